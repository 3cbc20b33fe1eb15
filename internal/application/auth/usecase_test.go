package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Farmacia-api/pkg/jwt"
)

// Fakes en memoria para usuarios y catálogo de roles.

type fakeUserRepo struct {
	byID    map[string]entity.User
	byEmail map[string]string // email -> id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]entity.User), byEmail: make(map[string]string)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byID[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return r.GetByID(id)
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for id := range r.byID {
		u := r.byID[id]
		out = append(out, &u)
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateRole(userID, roleID string) error {
	u, ok := r.byID[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.RoleID = roleID
	if roleID == "role-admin" {
		u.Role = entity.RoleAdministrateur
	} else {
		u.Role = entity.RoleEmploye
	}
	r.byID[userID] = u
	return nil
}

type fakeRoleRepo struct{}

func (r *fakeRoleRepo) GetByID(id string) (*entity.Role, error) {
	switch id {
	case "role-admin":
		return &entity.Role{ID: id, Name: entity.RoleAdministrateur}, nil
	case "role-emp":
		return &entity.Role{ID: id, Name: entity.RoleEmploye}, nil
	}
	return nil, nil
}

func (r *fakeRoleRepo) GetByName(name string) (*entity.Role, error) {
	switch name {
	case entity.RoleAdministrateur:
		return &entity.Role{ID: "role-admin", Name: name}, nil
	case entity.RoleEmploye:
		return &entity.Role{ID: "role-emp", Name: name}, nil
	}
	return nil, nil
}

func (r *fakeRoleRepo) List() ([]*entity.Role, error) {
	return []*entity.Role{
		{ID: "role-admin", Name: entity.RoleAdministrateur},
		{ID: "role-emp", Name: entity.RoleEmploye},
	}, nil
}

var testJWTCfg = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "farmacia-api-test"}

func newAuthFixture() (*auth.AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return auth.NewAuthUseCase(repo, &fakeRoleRepo{}, testJWTCfg), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_AsignaRolEmployePorDefecto(t *testing.T) {
	uc, _ := newAuthFixture()
	out, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@farmacia.test", Password: "supersecreta", Name: "Ana"})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleEmploye, out.Role, "todo usuario nuevo entra como employe")
	assert.Equal(t, "Ana", out.Name)
	assert.NotEmpty(t, out.ID)
}

func TestRegister_NoGuardaPasswordEnClaro(t *testing.T) {
	uc, repo := newAuthFixture()
	out, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@farmacia.test", Password: "supersecreta"})
	require.NoError(t, err)

	stored := repo.byID[out.ID]
	assert.NotEqual(t, "supersecreta", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_EmailDuplicado_RetornaEmailAlreadyExists(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@farmacia.test", Password: "supersecreta"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@farmacia.test", Password: "otracosa123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_RetornaTokenConRolEnClaims(t *testing.T) {
	uc, _ := newAuthFixture()
	reg, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@farmacia.test", Password: "supersecreta"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@farmacia.test", Password: "supersecreta"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, reg.ID, out.User.ID)

	userID, role, err := pkgjwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, entity.RoleEmploye, role, "el rol viaja en los claims del token")
}

func TestLogin_PasswordIncorrecta_RetornaUnauthorized(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@farmacia.test", Password: "supersecreta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@farmacia.test", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_RetornaUserNotFound(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Login(dto.LoginRequest{Email: "nadie@farmacia.test", Password: "loquesea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gestión de roles
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateUserRole_SoloAdministrador(t *testing.T) {
	uc, _ := newAuthFixture()
	reg, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@farmacia.test", Password: "supersecreta"})
	require.NoError(t, err)

	_, err = uc.UpdateUserRole(entity.RoleEmploye, reg.ID, dto.UpdateUserRoleRequest{Role: entity.RoleAdministrateur})
	assert.ErrorIs(t, err, domain.ErrForbidden, "un employe no puede cambiar roles")

	out, err := uc.UpdateUserRole(entity.RoleAdministrateur, reg.ID, dto.UpdateUserRoleRequest{Role: entity.RoleAdministrateur})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdministrateur, out.Role)

	role, err := uc.RoleOf(reg.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdministrateur, role.Role)
}

func TestUpdateUserRole_RolDesconocido_RetornaInvalidInput(t *testing.T) {
	uc, _ := newAuthFixture()
	reg, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@farmacia.test", Password: "supersecreta"})
	require.NoError(t, err)

	_, err = uc.UpdateUserRole(entity.RoleAdministrateur, reg.ID, dto.UpdateUserRoleRequest{Role: "superusuario"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
