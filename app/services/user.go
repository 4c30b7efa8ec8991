package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/nikkei/app/models"
	"github.com/shashiranjanraj/nikkei/pkg/logger"
	"github.com/shashiranjanraj/nikkei/pkg/validate"
)

// UserStore is the slice of the user repository the service uses.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.User, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	ExistsByEmail(ctx context.Context, email string, exclude primitive.ObjectID) (bool, error)
}

// UserClientStore is the slice of the client repository the user flow
// uses: registering a user creates its client document first.
type UserClientStore interface {
	Create(ctx context.Context, client *models.Client) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	ExistsByNationalID(ctx context.Context, nationalID string, exclude primitive.ObjectID) (bool, error)
}

// ClientInput carries the personal data captured at registration.
type ClientInput struct {
	FullName   string
	NationalID string
	BirthDate  *time.Time
	Sex        *string
	Phone      string
	Addresses  []AddressInput
}

func (in ClientInput) model() *models.Client {
	client := &models.Client{
		FullName:   in.FullName,
		NationalID: in.NationalID,
		BirthDate:  in.BirthDate,
		Phone:      in.Phone,
	}
	if in.Sex != nil {
		client.Sex = *in.Sex
	}
	for _, a := range in.Addresses {
		client.Addresses = append(client.Addresses, a.model())
	}
	return client
}

// UserInput carries a registration: account credentials plus the client's
// personal data, written as two documents.
type UserInput struct {
	Email     string
	Password  string
	ProfileID primitive.ObjectID
	Client    ClientInput
}

// UserUpdateInput carries a partial account update. Nil fields are left
// untouched.
type UserUpdateInput struct {
	Email     *string
	Password  *string
	ProfileID *primitive.ObjectID
	Status    *string
}

type UserService struct {
	users    UserStore
	clients  UserClientStore
	profiles ProfileFinder
}

func NewUserService(users UserStore, clients UserClientStore, profiles ProfileFinder) *UserService {
	return &UserService{users: users, clients: clients, profiles: profiles}
}

// Create registers an account. The client document is written first and
// rolled back if the user insert fails, so a half-registration never
// leaves an orphaned client behind.
func (s *UserService) Create(ctx context.Context, in UserInput) (*models.User, error) {
	if _, err := s.profiles.FindByID(ctx, in.ProfileID); err != nil {
		return nil, refCheck(err, "profile")
	}

	client := in.Client.model()
	if errs := validate.Struct(client); validate.HasErrors(errs) {
		return nil, validationErr(errs)
	}
	taken, err := s.clients.ExistsByNationalID(ctx, in.Client.NationalID, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, validationErr(map[string]string{"nationalId": "national id is already registered"})
	}
	taken, err = s.users.ExistsByEmail(ctx, in.Email, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, validationErr(map[string]string{"email": "email is already registered"})
	}

	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     in.Email,
		Password:  in.Password,
		Status:    models.UserStatusPendingValidation,
		ClientID:  client.ID,
		ProfileID: in.ProfileID,
	}
	if errs := validate.Struct(user); validate.HasErrors(errs) {
		s.rollbackClient(ctx, client.ID)
		return nil, validationErr(errs)
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.rollbackClient(ctx, client.ID)
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, in UserUpdateInput) (*models.User, error) {
	fields := bson.M{}
	if in.Email != nil {
		probe := struct {
			Email string `json:"email" validate:"required,email"`
		}{Email: *in.Email}
		if errs := validate.Struct(probe); validate.HasErrors(errs) {
			return nil, validationErr(errs)
		}
		taken, err := s.users.ExistsByEmail(ctx, *in.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, validationErr(map[string]string{"email": "email is already registered"})
		}
		fields["email"] = *in.Email
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, validationErr(map[string]string{"password": "password is required"})
		}
		fields["password"] = *in.Password
	}
	if in.ProfileID != nil {
		if _, err := s.profiles.FindByID(ctx, *in.ProfileID); err != nil {
			return nil, refCheck(err, "profile")
		}
		fields["profileId"] = *in.ProfileID
	}
	if in.Status != nil {
		status := models.UserStatus(*in.Status)
		if !status.Valid() {
			return nil, validationErr(map[string]string{"status": "status is not a valid value"})
		}
		fields["status"] = status
	}
	if len(fields) == 0 {
		return nil, validationErr(map[string]string{"input": "no fields to update"})
	}
	return s.users.UpdateByID(ctx, id, fields)
}

// ChangeStatus moves the account to the given status. Any status can be
// set at any time.
func (s *UserService) ChangeStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.User, error) {
	st := models.UserStatus(status)
	if !st.Valid() {
		return nil, validationErr(map[string]string{"status": "status is not a valid value"})
	}
	return s.users.UpdateByID(ctx, id, bson.M{"status": st})
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.users.DeleteByID(ctx, id)
}

func (s *UserService) rollbackClient(ctx context.Context, id primitive.ObjectID) {
	if err := s.clients.DeleteByID(ctx, id); err != nil {
		logger.WithCtx(ctx).Error("rollback of client after failed user create",
			"client_id", id.Hex(), "error", err)
	}
}
