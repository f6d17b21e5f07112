package user

import (
	"Recipe-App-API/domain"
	"Recipe-App-API/entities"
	"Recipe-App-API/pkg/jwt"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func newTestService() (UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo, jwt.NewJWTService()), repo
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "Test@example.com", NormalizeEmail("Test@EXAMPLE.com"))
	assert.Equal(t, "plainstring", NormalizeEmail("plainstring"))
}

func TestRegister(t *testing.T) {
	service, repo := newTestService()

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "test@EXAMPLE.com",
		Password: "testpass123",
		Name:     "Test User",
	})
	require.NoError(t, err)

	assert.Equal(t, "test@example.com", res.Email)
	require.Len(t, repo.users, 1)

	stored := repo.users[res.ID]
	assert.NotEqual(t, "testpass123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("testpass123")))
	assert.True(t, stored.IsActive)
}

func TestRegister_EmailRequired(t *testing.T) {
	service, repo := newTestService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Password: "testpass123",
		Name:     "Test User",
	})

	assert.ErrorIs(t, err, domain.ErrEmailRequired)
	assert.Empty(t, repo.users)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service, repo := newTestService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "test@example.com",
		Password: "testpass123",
		Name:     "First",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Email:    "test@EXAMPLE.COM",
		Password: "otherpass",
		Name:     "Second",
	})

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
	assert.Len(t, repo.users, 1)
}

func TestLogin(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "test@example.com",
		Password: "testpass123",
		Name:     "Test User",
	})
	require.NoError(t, err)

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "test@example.com",
		Password: "testpass123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, domain.RoleUser, res.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "test@example.com",
		Password: "testpass123",
		Name:     "Test User",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "test@example.com",
		Password: "wrongpass",
	})

	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLogin_UnknownEmail(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestLogin_InactiveUser(t *testing.T) {
	service, repo := newTestService()

	hashed, err := bcrypt.GenerateFromPassword([]byte("testpass123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := &entities.User{
		ID:       uuid.New(),
		Email:    "inactive@example.com",
		Password: string(hashed),
		Name:     "Inactive",
		IsActive: false,
	}
	repo.users[stored.ID.String()] = stored

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "inactive@example.com",
		Password: "testpass123",
	})

	assert.ErrorIs(t, err, domain.ErrUserNotActive)
}

func TestUpdateUser_PartialFields(t *testing.T) {
	service, repo := newTestService()

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "test@example.com",
		Password: "testpass123",
		Name:     "Old Name",
	})
	require.NoError(t, err)
	oldPassword := repo.users[res.ID].Password

	err = service.UpdateUser(context.Background(), domain.UpdateUserRequest{Name: "New Name"}, res.ID)
	require.NoError(t, err)

	stored := repo.users[res.ID]
	assert.Equal(t, "New Name", stored.Name)
	assert.Equal(t, oldPassword, stored.Password)
}

func TestUpdateUser_Password(t *testing.T) {
	service, repo := newTestService()

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "test@example.com",
		Password: "testpass123",
		Name:     "Test User",
	})
	require.NoError(t, err)

	err = service.UpdateUser(context.Background(), domain.UpdateUserRequest{Password: "newpass456"}, res.ID)
	require.NoError(t, err)

	stored := repo.users[res.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("newpass456")))
}

func TestMe(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Register(context.Background(), domain.RegisterRequest{
		Email:    "test@example.com",
		Password: "testpass123",
		Name:     "Test User",
	})
	require.NoError(t, err)

	res, err := service.Me(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", res.Email)
	assert.Equal(t, "Test User", res.Name)
}

func TestMe_Missing(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Me(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
