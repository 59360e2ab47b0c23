package http

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"fintrack/internal/session"
)

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// handleLogin exchanges the shared password for a bearer session token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.password == "" {
		writeError(w, http.StatusNotFound, "authentication is not configured")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.password)) != 1 {
		writeError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	token := generateToken()
	sess := session.New(token, s.now(), s.sessionTTL)
	s.sessions.Set(token, sess)

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     token,
		ExpiresAt: sess.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// withAuth validates the bearer token when a password is configured.
// Valid requests refresh the session's activity timestamp.
func (s *Server) withAuth(next http.HandlerFunc) http.HandlerFunc {
	if s.password == "" {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		sess, found := s.sessions.Get(token)
		if !found {
			writeError(w, http.StatusUnauthorized, "invalid session")
			return
		}

		now := s.now()
		if !sess.Active(now, s.sessionTTL) {
			s.sessions.Delete(token)
			writeError(w, http.StatusUnauthorized, "session expired")
			return
		}

		s.sessions.Set(token, sess.Touch(now))
		next(w, r)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", false
	}
	token := strings.TrimSpace(auth[len(prefix):])
	return token, token != ""
}

func generateToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand failing means the process is in a bad state anyway.
		panic(err)
	}
	return hex.EncodeToString(bytes)
}
