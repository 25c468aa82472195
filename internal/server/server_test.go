package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	v1check "user-records-example/api/check/v1"
	v1 "user-records-example/api/user/v1"
	"user-records-example/internal/biz"
	"user-records-example/internal/biz/model"
	conf "user-records-example/internal/conf/v1"
	"user-records-example/internal/data"
	"user-records-example/internal/pkg/errresp"
	"user-records-example/internal/service"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/sdk/metric"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

// MockUserUseCase 是 UserUseCase 的模拟实现
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) GetProfile(ctx context.Context, id int64) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockUserUseCase) CreateProfile(ctx context.Context, profile model.Profile) (*model.Profile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockUserUseCase) Register(ctx context.Context, reg model.Registration) (*model.Account, error) {
	args := m.Called(ctx, reg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockUserUseCase) GetAccount(ctx context.Context, username string) (*model.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

// MockCheckUseCase 是 CheckUseCase 的模拟实现
type MockCheckUseCase struct {
	mock.Mock
}

func (m *MockCheckUseCase) Ready(ctx context.Context, req model.HealthCheckReq) (model.HealthCheckReply, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.HealthCheckReply), args.Error(1)
}

// testLifecycle 是用于测试的简单生命周期实现
type testLifecycle struct {
	hooks []fx.Hook
}

func (tl *testLifecycle) Append(hook fx.Hook) {
	tl.hooks = append(tl.hooks, hook)
}

func testConfig() *conf.Bootstrap {
	return &conf.Bootstrap{
		Server: &conf.Server{
			Http: &conf.Server_HTTP{
				Addr: ":8080",
			},
		},
		Security: &conf.Security{PasswordHashCost: 4},
	}
}

// newTestHandler 使用内存存储组装完整的处理器链
func newTestHandler(t *testing.T, users model.UserUseCase, check model.CheckUseCase) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	return NewHandler(
		NewUserHandler(users, check, logger),
		service.NewUserService(users),
		service.NewCheckService(check),
		logger,
		MonitoringMiddleware(logger),
		ConnectMonitoringInterceptor(logger),
	)
}

// ServerTestSuite 通过完整的处理器链验证 REST 接口
type ServerTestSuite struct {
	suite.Suite
	logger  *zap.Logger
	handler http.Handler
}

func (suite *ServerTestSuite) SetupTest() {
	suite.logger = zap.NewNop()

	otel.SetTracerProvider(nooptrace.NewTracerProvider())
	otel.SetMeterProvider(noop.NewMeterProvider())

	profiles := data.NewMemoryStore[int64, model.Profile]()
	accounts := data.NewMemoryStore[string, model.Account]()

	users, err := biz.NewUserUseCase(profiles, accounts, testConfig(), suite.logger)
	suite.Require().NoError(err)
	check, err := biz.NewCheckUseCase(data.NewCheckRepo(profiles, accounts, suite.logger))
	suite.Require().NoError(err)

	suite.handler = newTestHandler(suite.T(), users, check)
}

func (suite *ServerTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	suite.handler.ServeHTTP(recorder, req)
	return recorder
}

// assertErrorHeaders 错误响应必须带 JSON 类型与耗时头
func (suite *ServerTestSuite) assertErrorHeaders(recorder *httptest.ResponseRecorder) {
	suite.Equal("application/json", recorder.Header().Get("Content-Type"))
	elapsed, err := strconv.ParseFloat(recorder.Header().Get(errresp.HeaderHandleTime), 64)
	suite.Require().NoError(err)
	suite.GreaterOrEqual(elapsed, 0.0)
}

func (suite *ServerTestSuite) TestCreateAndGetUser() {
	recorder := suite.do(http.MethodPost, "/users/", `{"id":3,"name":"Carol"}`)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"id":3,"name":"Carol"}`, recorder.Body.String())

	recorder = suite.do(http.MethodGet, "/users/3", "")
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"id":3,"name":"Carol"}`, recorder.Body.String())
	suite.Empty(recorder.Header().Get(errresp.HeaderHandleTime))
}

func (suite *ServerTestSuite) TestCreateUser_Duplicate() {
	suite.Equal(http.StatusOK, suite.do(http.MethodPost, "/users/", `{"id":3,"name":"Carol"}`).Code)

	recorder := suite.do(http.MethodPost, "/users/", `{"id":3,"name":"Carol"}`)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.JSONEq(
		`{"statusCode":400,"message":"User with this ID already exists","errorCode":"INVALID_USER_DATA"}`,
		recorder.Body.String(),
	)
	suite.Equal(model.CodeInvalidUserData, recorder.Header().Get(errresp.HeaderErrorCode))
	suite.assertErrorHeaders(recorder)

	// 第一次写入的记录保持不变
	recorder = suite.do(http.MethodGet, "/users/3", "")
	suite.JSONEq(`{"id":3,"name":"Carol"}`, recorder.Body.String())
}

func (suite *ServerTestSuite) TestCreateUser_WithoutTrailingSlash() {
	recorder := suite.do(http.MethodPost, "/users", `{"id":4,"name":"Dave"}`)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *ServerTestSuite) TestCreateUser_MissingName() {
	recorder := suite.do(http.MethodPost, "/users/", `{"id":5}`)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.JSONEq(
		`{"statusCode":400,"message":"name is required","errorCode":"INVALID_USER_DATA"}`,
		recorder.Body.String(),
	)
}

func (suite *ServerTestSuite) TestGetUser_NotFound() {
	recorder := suite.do(http.MethodGet, "/users/999", "")

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.JSONEq(
		`{"statusCode":404,"message":"User with ID 999 not found","errorCode":"USER_NOT_FOUND"}`,
		recorder.Body.String(),
	)
	suite.Equal(model.CodeUserNotFound, recorder.Header().Get(errresp.HeaderErrorCode))
	suite.assertErrorHeaders(recorder)
}

func (suite *ServerTestSuite) TestRegisterAndGetAccount() {
	recorder := suite.do(http.MethodPost, "/register/",
		`{"username":"alice","email":"alice@example.com","password":"password123"}`)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"username":"alice","email":"alice@example.com"}`, recorder.Body.String())

	for _, target := range []string{"/users/alice", "/accounts/alice"} {
		recorder = suite.do(http.MethodGet, target, "")
		suite.Equal(http.StatusOK, recorder.Code, target)
		suite.JSONEq(`{"username":"alice","email":"alice@example.com"}`, recorder.Body.String(), target)
		suite.NotContains(recorder.Body.String(), "password", target)
	}
}

func (suite *ServerTestSuite) TestRegister_DuplicateUsername() {
	body := `{"username":"alice","email":"alice@example.com","password":"password123"}`
	suite.Equal(http.StatusOK, suite.do(http.MethodPost, "/register/", body).Code)

	recorder := suite.do(http.MethodPost, "/register/", body)

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.JSONEq(
		`{"statusCode":400,"message":"User with this username already exists.","errorCode":"INVALID_USER_DATA"}`,
		recorder.Body.String(),
	)
}

func (suite *ServerTestSuite) TestRegister_InvalidData() {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "short password",
			body:    `{"username":"bob","email":"bob@example.com","password":"short"}`,
			message: "password must be at least 8 characters",
		},
		{
			name:    "invalid email",
			body:    `{"username":"bob","email":"not-an-email","password":"password123"}`,
			message: "email must be a valid email address",
		},
		{
			name:    "numeric username",
			body:    `{"username":"12345","email":"bob@example.com","password":"password123"}`,
			message: "username must not be a numeric ID",
		},
		{
			name:    "negative numeric username",
			body:    `{"username":"-5","email":"bob@example.com","password":"password123"}`,
			message: "username must not be a numeric ID",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := suite.do(http.MethodPost, "/register/", tt.body)
			suite.Equal(http.StatusBadRequest, recorder.Code)
			suite.Equal(model.CodeInvalidUserData, recorder.Header().Get(errresp.HeaderErrorCode))
			suite.Contains(recorder.Body.String(), tt.message)
		})
	}
}

// 注册成功的用户名都能通过 /users/{key} 读回，非规范整数不是 Profile 别名
func (suite *ServerTestSuite) TestUsersRoute_NumericLookingUsernames() {
	suite.Equal(http.StatusOK, suite.do(http.MethodPost, "/users/", `{"id":7,"name":"Grace"}`).Code)

	for _, username := range []string{"+7", "007"} {
		recorder := suite.do(http.MethodPost, "/register/",
			`{"username":"`+username+`","email":"n@example.com","password":"password123"}`)
		suite.Require().Equal(http.StatusOK, recorder.Code, username)

		recorder = suite.do(http.MethodGet, "/users/"+username, "")
		suite.Equal(http.StatusOK, recorder.Code, username)
		suite.JSONEq(`{"username":"`+username+`","email":"n@example.com"}`, recorder.Body.String(), username)
	}

	recorder := suite.do(http.MethodGet, "/users/7", "")
	suite.JSONEq(`{"id":7,"name":"Grace"}`, recorder.Body.String())

	recorder = suite.do(http.MethodGet, "/users/-5", "")
	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.JSONEq(
		`{"statusCode":404,"message":"User with ID -5 not found","errorCode":"USER_NOT_FOUND"}`,
		recorder.Body.String(),
	)
}

func (suite *ServerTestSuite) TestGetAccount_NotFound() {
	recorder := suite.do(http.MethodGet, "/users/ghost", "")

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.JSONEq(
		`{"statusCode":404,"message":"User 'ghost' not found.","errorCode":"USER_NOT_FOUND"}`,
		recorder.Body.String(),
	)
}

func (suite *ServerTestSuite) TestMalformedBody() {
	for _, body := range []string{`{"id":`, `{"id":1,"name":"A"} {"id":2}`, `[]`} {
		recorder := suite.do(http.MethodPost, "/users/", body)

		suite.Equal(http.StatusBadRequest, recorder.Code, body)
		suite.JSONEq(`{"statusCode":400,"message":"invalid request body"}`, recorder.Body.String(), body)
		suite.Empty(recorder.Header().Get(errresp.HeaderErrorCode), body)
		suite.assertErrorHeaders(recorder)
	}
}

func (suite *ServerTestSuite) TestBodyTooLarge() {
	body := `{"id":1,"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`

	recorder := suite.do(http.MethodPost, "/users/", body)

	suite.Equal(http.StatusRequestEntityTooLarge, recorder.Code)
	suite.JSONEq(`{"statusCode":413,"message":"request body too large"}`, recorder.Body.String())
}

func (suite *ServerTestSuite) TestUnknownRoute() {
	recorder := suite.do(http.MethodGet, "/nope", "")

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.JSONEq(`{"statusCode":404,"message":"Not Found"}`, recorder.Body.String())
	suite.assertErrorHeaders(recorder)
}

func (suite *ServerTestSuite) TestHealthz() {
	recorder := suite.do(http.MethodGet, "/healthz", "")

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"status":"Ready"}`, recorder.Body.String())
}

func (suite *ServerTestSuite) TestConnectRoute() {
	recorder := suite.do(http.MethodPost, "/user.v1.UserService/GetUser", `{"id":999}`)

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.Contains(recorder.Body.String(), `"code":"not_found"`)
}

// Connect 与 REST 共用同一个存储，protojson 中 int64 以字符串表示
func (suite *ServerTestSuite) TestConnectRoute_CreateVisibleOverREST() {
	recorder := suite.do(http.MethodPost, "/user.v1.UserService/CreateUser", `{"id":"5","name":"Eve"}`)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"id":"5","name":"Eve"}`, recorder.Body.String())

	recorder = suite.do(http.MethodGet, "/users/5", "")
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"id":5,"name":"Eve"}`, recorder.Body.String())
}

func (suite *ServerTestSuite) TestConnectRoute_BinaryProtobuf() {
	suite.Require().Equal(http.StatusOK, suite.do(http.MethodPost, "/users", `{"id":1,"name":"Alice"}`).Code)

	body, err := proto.Marshal(&v1.GetUserRequest{Id: 1})
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/user.v1.UserService/GetUser", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/proto")
	recorder := httptest.NewRecorder()
	suite.handler.ServeHTTP(recorder, req)

	suite.Equal(http.StatusOK, recorder.Code)
	var user v1.User
	suite.Require().NoError(proto.Unmarshal(recorder.Body.Bytes(), &user))
	suite.Equal(int64(1), user.GetId())
	suite.Equal("Alice", user.GetName())
}

func (suite *ServerTestSuite) TestResponseWriter() {
	mockResponseWriter := httptest.NewRecorder()

	wrappedWriter := &responseWriter{
		ResponseWriter: mockResponseWriter,
		statusCode:     http.StatusOK,
	}

	wrappedWriter.WriteHeader(http.StatusNotFound)
	suite.Equal(http.StatusNotFound, wrappedWriter.statusCode)

	// 重复 WriteHeader 不覆盖状态码
	wrappedWriter.WriteHeader(http.StatusInternalServerError)
	suite.Equal(http.StatusNotFound, wrappedWriter.statusCode)

	bytesWritten, err := wrappedWriter.Write([]byte("test"))

	suite.NoError(err)
	suite.Equal(4, bytesWritten)
	suite.Equal("test", mockResponseWriter.Body.String())
	suite.Equal(mockResponseWriter, wrappedWriter.Unwrap())
}

func (suite *ServerTestSuite) TestMiddlewareModule() {
	app := fx.New(
		MiddlewareModule,
		fx.NopLogger,
		fx.Provide(func() *zap.Logger {
			return zap.NewNop()
		}),
		fx.Invoke(func(monitoringMiddleware func(http.Handler) http.Handler, connectInterceptor connect.UnaryInterceptorFunc) {
			suite.NotNil(monitoringMiddleware)
			suite.NotNil(connectInterceptor)
		}),
	)

	suite.NoError(app.Err())
}

func (suite *ServerTestSuite) TestNewMetrics() {
	reader := metric.NewManualReader()
	otel.SetMeterProvider(metric.NewMeterProvider(metric.WithReader(reader)))

	m, err := newMetrics()

	suite.NoError(err)
	suite.NotNil(m.requests)
	suite.NotNil(m.duration)
	suite.NotNil(m.errors)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestNewHTTPServer(t *testing.T) {
	logger := zap.NewNop()
	cfg := testConfig()
	cfg.Server.Http.ReadTimeout = 5

	users := new(MockUserUseCase)
	check := new(MockCheckUseCase)
	lc := &testLifecycle{}

	server := NewHTTPServer(
		lc,
		cfg,
		NewUserHandler(users, check, logger),
		service.NewUserService(users),
		service.NewCheckService(check),
		logger,
		MonitoringMiddleware(logger),
		ConnectMonitoringInterceptor(logger),
	)

	require.NotNil(t, server)
	assert.Equal(t, ":8080", server.Addr)
	assert.NotNil(t, server.Handler)
	assert.Equal(t, 5*time.Second, server.ReadTimeout)
	assert.Equal(t, defaultWriteTimeout, server.WriteTimeout)
	assert.Equal(t, defaultIdleTimeout, server.IdleTimeout)
	require.Len(t, lc.hooks, 1)

	// 服务未启动时 Shutdown 直接返回
	assert.NoError(t, lc.hooks[0].OnStop(context.Background()))
}

func TestRecoveryMiddleware_Panic(t *testing.T) {
	users := new(MockUserUseCase)
	users.On("GetProfile", mock.Anything, int64(1)).Run(func(mock.Arguments) {
		panic("boom")
	})
	handler := newTestHandler(t, users, new(MockCheckUseCase))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users/1", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"statusCode":500,"message":"Internal Server Error"}`, recorder.Body.String())
	assert.NotEmpty(t, recorder.Header().Get(errresp.HeaderHandleTime))
}

// 已写出部分响应后 panic，不追加错误响应，直接中止
func TestRecoveryMiddleware_PanicAfterWrite(t *testing.T) {
	handler := RecoveryMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":1`))
		panic("boom")
	}))
	recorder := httptest.NewRecorder()

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users/1", nil))
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `{"id":1`, recorder.Body.String())
	assert.Empty(t, recorder.Header().Get(errresp.HeaderHandleTime))
}

func TestRecoveryMiddleware_AbortHandler(t *testing.T) {
	handler := RecoveryMiddleware(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestUserHandler_InternalError(t *testing.T) {
	users := new(MockUserUseCase)
	users.On("GetAccount", mock.Anything, "bob").Return(nil, errors.New("redis: connection refused"))
	handler := newTestHandler(t, users, new(MockCheckUseCase))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/accounts/bob", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"statusCode":500,"message":"Internal Server Error"}`, recorder.Body.String())
	assert.NotContains(t, recorder.Body.String(), "redis")
}

func TestUserHandler_HealthzUnhealthy(t *testing.T) {
	check := new(MockCheckUseCase)
	check.On("Ready", mock.Anything, model.HealthCheckReq{}).
		Return(model.HealthCheckReply{Status: "Unhealthy"}, errors.New("redis down"))
	handler := newTestHandler(t, new(MockUserUseCase), check)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.JSONEq(t, `{"statusCode":503,"message":"Unhealthy"}`, recorder.Body.String())
}

func TestMonitoringMiddleware(t *testing.T) {
	logger := zap.NewNop()

	okHandler := MonitoringMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	recorder := httptest.NewRecorder()
	okHandler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())

	errHandler := MonitoringMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errresp.Write(w, model.NewUserNotFound(int64(7)))
	}))
	recorder = httptest.NewRecorder()
	errHandler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users/7", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, model.CodeUserNotFound, recorder.Header().Get(errresp.HeaderErrorCode))
}

func TestConnectMonitoringInterceptor(t *testing.T) {
	interceptor := ConnectMonitoringInterceptor(zap.NewNop())
	req := connect.NewRequest(&v1check.ReadyCheckReq{})

	ok := interceptor(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&v1check.ReadyCheckReply{Status: "Ready"}), nil
	})
	resp, err := ok(context.Background(), req)
	assert.NoError(t, err)
	assert.NotNil(t, resp)

	for _, code := range []connect.Code{connect.CodeInternal, connect.CodeNotFound} {
		failing := interceptor(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			return nil, connect.NewError(code, errors.New("failed"))
		})
		resp, err = failing(context.Background(), req)
		assert.Equal(t, code, connect.CodeOf(err))
		assert.Nil(t, resp)
	}
}
