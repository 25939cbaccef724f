// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"webbuilder/internal/ledger"
	"webbuilder/internal/middleware"
	"webbuilder/internal/models"
	"webbuilder/internal/session"
	"webbuilder/internal/store"
)

// totpIssuer is the issuer label shown in authenticator apps.
const totpIssuer = "WebBuilder"

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	sessions     *session.Store
	userStore    *store.UserStore
	ledger       *ledger.Ledger
	welcomeBonus int64
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions *session.Store, userStore *store.UserStore, lg *ledger.Ledger, welcomeBonus int64) *Auth {
	return &Auth{
		sessions:     sessions,
		userStore:    userStore,
		ledger:       lg,
		welcomeBonus: welcomeBonus,
	}
}

// userPayload is the user shape returned to clients.
type userPayload struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	TOTPEnabled bool   `json:"totp_enabled"`
}

func toUserPayload(u *models.User) userPayload {
	return userPayload{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		TOTPEnabled: u.TOTPEnabled,
	}
}

// Register creates a new account, grants the welcome bonus, and signs the
// user in.
func (a *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek gövdesi.")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if msg := validateRegister(req.Email, req.Password, req.DisplayName); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	existing, err := a.userStore.FindByEmail(req.Email)
	if err != nil {
		respondInternal(w, "register lookup failed", err)
		return
	}
	if existing != nil {
		respondError(w, http.StatusConflict, "Bu e-posta adresi zaten kayıtlı.")
		return
	}

	user, err := a.userStore.Create(req.Email, req.Password, req.DisplayName)
	if err != nil {
		respondInternal(w, "register create failed", err)
		return
	}

	if a.welcomeBonus > 0 {
		if _, err := a.ledger.RecordBonus(r.Context(), user.ID, a.welcomeBonus, "Hoş geldin bonusu"); err != nil {
			// The account exists; the bonus can be granted by support later.
			slog.Error("welcome bonus failed", "user_id", user.ID, "error", err)
		}
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}); err != nil {
		respondInternal(w, "session create failed", err)
		return
	}

	respondMessage(w, http.StatusCreated, "Hesabınız oluşturuldu.", toUserPayload(user))
}

// Login validates credentials and creates a session. When the account has
// 2FA enabled the session starts unverified and protected routes stay
// closed until the code is confirmed.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek gövdesi.")
		return
	}

	user, err := a.userStore.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		respondInternal(w, "login lookup failed", err)
		return
	}
	if user == nil || !a.userStore.CheckPassword(user, req.Password) {
		respondError(w, http.StatusUnauthorized, "E-posta veya şifre hatalı.")
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, &session.Data{
		UserID:        user.ID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		TwoFARequired: user.TOTPEnabled,
	}); err != nil {
		respondInternal(w, "session create failed", err)
		return
	}

	respondMessage(w, http.StatusOK, "Giriş başarılı.", map[string]any{
		"user":            toUserPayload(user),
		"two_fa_required": user.TOTPEnabled,
	})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	respondMessage(w, http.StatusOK, "Çıkış yapıldı.", nil)
}

// TwoFASetup generates a fresh TOTP secret for the signed-in user and
// returns it with a QR code PNG (base64). The secret only becomes active
// after TwoFAVerify confirms a valid code.
func (a *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		respondInternal(w, "totp generate failed", err)
		return
	}

	if err := a.userStore.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		respondInternal(w, "save totp secret failed", err)
		return
	}

	qrPNG, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		respondInternal(w, "qr code generation failed", err)
		return
	}

	respondData(w, http.StatusOK, map[string]any{
		"secret":  key.Secret(),
		"qr_code": base64.StdEncoding.EncodeToString(qrPNG),
	})
}

// TwoFAVerify validates a TOTP code. On first-time setup it activates 2FA
// for the account; on login it unlocks the pending session.
func (a *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Oturum açmanız gerekiyor.")
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Geçersiz istek gövdesi.")
		return
	}

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		respondInternal(w, "user lookup for 2fa failed", err)
		return
	}
	if user.TOTPSecret == nil {
		respondError(w, http.StatusBadRequest, "Önce 2FA kurulumunu başlatın.")
		return
	}

	if !totp.Validate(req.Code, *user.TOTPSecret) {
		respondError(w, http.StatusUnauthorized, "Kod geçersiz. Tekrar deneyin.")
		return
	}

	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(user.ID); err != nil {
			respondInternal(w, "enable totp failed", err)
			return
		}
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		respondInternal(w, "session update failed", err)
		return
	}

	respondMessage(w, http.StatusOK, "Doğrulama başarılı.", nil)
}

// Me returns the signed-in user's profile.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil {
		respondInternal(w, "profile lookup failed", err)
		return
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Oturum açmanız gerekiyor.")
		return
	}

	respondData(w, http.StatusOK, toUserPayload(user))
}
