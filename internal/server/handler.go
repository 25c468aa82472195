package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"user-records-example/internal/biz/model"
	"user-records-example/internal/pkg/errresp"

	"go.uber.org/zap"
)

// maxBodyBytes 请求体大小上限
const maxBodyBytes = 1 << 20

type userRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type userResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// accountResponse 不包含密码
type accountResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserHandler 提供 REST 接口
type UserHandler struct {
	users  model.UserUseCase
	check  model.CheckUseCase
	logger *zap.Logger
}

func NewUserHandler(users model.UserUseCase, check model.CheckUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		check:  check,
		logger: logger,
	}
}

// Register 在 mux 上注册路由
func (h *UserHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /users/{key}", h.getUser)
	mux.HandleFunc("POST /users/{$}", h.createUser)
	mux.HandleFunc("POST /users", h.createUser)
	mux.HandleFunc("POST /register/{$}", h.register)
	mux.HandleFunc("POST /register", h.register)
	mux.HandleFunc("GET /accounts/{username}", h.getAccount)
	mux.HandleFunc("GET /healthz", h.healthz)
	mux.HandleFunc("/", h.notFound)
}

// getUser 规范整数键查询 Profile，其余按用户名查询 Account
func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	id, isID := model.ParseProfileKey(key)
	if !isID {
		h.writeAccount(w, r, key)
		return
	}

	p, err := h.users.GetProfile(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: p.ID, Name: p.Name})
}

func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	p, err := h.users.CreateProfile(r.Context(), model.Profile{ID: req.ID, Name: req.Name})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: p.ID, Name: p.Name})
}

func (h *UserHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	a, err := h.users.Register(r.Context(), model.Registration{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, accountResponse{Username: a.Username, Email: a.Email})
}

func (h *UserHandler) getAccount(w http.ResponseWriter, r *http.Request) {
	h.writeAccount(w, r, r.PathValue("username"))
}

func (h *UserHandler) writeAccount(w http.ResponseWriter, r *http.Request, username string) {
	a, err := h.users.GetAccount(r.Context(), username)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, accountResponse{Username: a.Username, Email: a.Email})
}

func (h *UserHandler) healthz(w http.ResponseWriter, r *http.Request) {
	reply, err := h.check.Ready(r.Context(), model.HealthCheckReq{})
	if err != nil {
		h.logger.Warn("Health check failed", zap.Error(err))
		h.writeError(w, r, errresp.NewHTTPError(http.StatusServiceUnavailable, reply.Status))
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *UserHandler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, errresp.NewHTTPError(http.StatusNotFound, http.StatusText(http.StatusNotFound)))
}

// writeError 所有错误响应的唯一出口
func (h *UserHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errresp.Write(w, err)
	if resp.StatusCode >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return
	}
	h.logger.Debug("Request rejected",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.String("error_code", resp.ErrorCode),
		zap.String("message", resp.Message),
	)
}

// decodeBody 解析 JSON 请求体，格式错误返回 400 HTTPError
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errresp.NewHTTPError(http.StatusRequestEntityTooLarge, "request body too large")
		}
		return errresp.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	// 只允许一个 JSON 值
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errresp.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
