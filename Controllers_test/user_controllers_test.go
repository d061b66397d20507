package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/laundry-app/models"
	"github.com/yeremiapane/laundry-app/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	r, _ := setupRouterForTest(t, nil)

	w, env := doJSON(t, r, http.MethodPost, "/register", map[string]string{
		"name":           "Ani",
		"email_or_phone": "ani@example.com",
		"password":       "rahasia",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Status)
	var reg struct {
		UserID uint `json:"userId"`
	}
	decodeData(t, env, &reg)
	assert.NotZero(t, reg.UserID)

	w, env = doJSON(t, r, http.MethodPost, "/login", map[string]string{
		"email_or_phone": "ani@example.com",
		"password":       "rahasia",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		User struct {
			ID           uint   `json:"id"`
			Name         string `json:"name"`
			EmailOrPhone string `json:"email_or_phone"`
			Role         string `json:"role"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decodeData(t, env, &login)
	assert.Equal(t, reg.UserID, login.User.ID)
	assert.Equal(t, models.RoleCustomer, login.User.Role)

	claims, err := utils.ParseToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, claims.UserID)
}

func TestRegisterErrors(t *testing.T) {
	r, _ := setupRouterForTest(t, nil)
	body := map[string]string{"name": "Ani", "email_or_phone": "ani@example.com", "password": "rahasia"}

	w, _ := doJSON(t, r, http.MethodPost, "/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Status)
	assert.Equal(t, "Email/No HP sudah terdaftar", env.Message)

	w, _ = doJSON(t, r, http.MethodPost, "/register", map[string]string{"name": "Budi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginErrors(t *testing.T) {
	r, db := setupRouterForTest(t, nil)
	seedUser(t, db, "ani@example.com", "rahasia", models.RoleCustomer)

	w, _ := doJSON(t, r, http.MethodPost, "/login", map[string]string{"email_or_phone": "ani@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := doJSON(t, r, http.MethodPost, "/login", map[string]string{"email_or_phone": "ani@example.com", "password": "salah"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Kredensial salah", env.Message)

	w, _ = doJSON(t, r, http.MethodPost, "/login", map[string]string{"email_or_phone": "nobody", "password": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOwnerLogin(t *testing.T) {
	r, db := setupRouterForTest(t, nil)
	seedUser(t, db, "owner@laundry.com", "admin", models.RoleOwner)
	seedUser(t, db, "ani@example.com", "rahasia", models.RoleCustomer)

	w, env := doJSON(t, r, http.MethodPost, "/owner/login", map[string]string{"email_or_phone": "ani@example.com", "password": "rahasia"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Akses Ditolak. Area khusus Owner.", env.Message)

	w, _ = doJSON(t, r, http.MethodPost, "/owner/login", map[string]string{"email_or_phone": "owner@laundry.com", "password": "salah"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = doJSON(t, r, http.MethodPost, "/owner/login", map[string]string{"email_or_phone": "owner@laundry.com", "password": "admin"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login Owner berhasil", env.Message)
}

func TestEmployees(t *testing.T) {
	r, _ := setupRouterForTest(t, nil)

	w, env := doJSON(t, r, http.MethodPost, "/owner/employees", map[string]string{"name": "Siti", "phone": "0811"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID uint `json:"id"`
	}
	decodeData(t, env, &created)

	// Default password applies when none is given.
	w, _ = doJSON(t, r, http.MethodPost, "/login", map[string]string{"email_or_phone": "0811", "password": "123456"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, r, http.MethodGet, "/owner/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var staff []map[string]interface{}
	decodeData(t, env, &staff)
	require.Len(t, staff, 1)
	assert.Equal(t, "0811", staff[0]["phone"])

	w, _ = doJSON(t, r, http.MethodDelete, "/owner/employees/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/owner/employees/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/owner/employees/"+itoa(created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthRoutesAreRateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.RatePerMinute = 3
	r, _ := setupRouterForTest(t, cfg)

	body := map[string]string{"email_or_phone": "nobody", "password": "x"}
	for i := 0; i < 3; i++ {
		w, _ := doJSON(t, r, http.MethodPost, "/login", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
	w, _ := doJSON(t, r, http.MethodPost, "/login", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Other routes are not limited.
	w, _ = doJSON(t, r, http.MethodGet, "/services", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
