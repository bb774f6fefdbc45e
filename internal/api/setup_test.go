package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/limbo/lifeflow/internal/api"
	"github.com/limbo/lifeflow/internal/service"
	"github.com/limbo/lifeflow/internal/service/mocks"
	"github.com/limbo/lifeflow/pkg/entity"
	jwtservice "github.com/limbo/lifeflow/pkg/jwt_service"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

const testSecret = "test_secret"

var (
	userID   = uuid.New()
	testUser = &entity.User{ID: userID, Name: "test_user"}
)

type serviceMocks struct {
	users       *mocks.MockUserServiceI
	habits      *mocks.MockHabitsServiceI
	logs        *mocks.MockHabitLogsServiceI
	streaks     *mocks.MockGoalStreaksServiceI
	progression *mocks.MockProgressionServiceI
}

// newTestServer returns a server over service mocks and a token of testUser,
// who always passes the auth middleware's existence check.
func newTestServer(t *testing.T) (*api.Server, serviceMocks, string) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		users:       mocks.NewMockUserServiceI(ctrl),
		habits:      mocks.NewMockHabitsServiceI(ctrl),
		logs:        mocks.NewMockHabitLogsServiceI(ctrl),
		streaks:     mocks.NewMockGoalStreaksServiceI(ctrl),
		progression: mocks.NewMockProgressionServiceI(ctrl),
	}
	jwt := jwtservice.New(testSecret)
	serv := api.New(&api.ServicesList{
		UserService:        m.users,
		HabitsService:      m.habits,
		HabitLogsService:   m.logs,
		GoalStreaksService: m.streaks,
		ProgressionService: m.progression,
		JwtService:         jwt,
	})
	token, err := jwt.GenerateToken(testUser)
	require.NoError(t, err)
	m.users.EXPECT().GetByID(gomock.Any(), userID).Return(testUser, nil).AnyTimes()
	return serv, m, token
}

// do sends body as JSON unless it is a string, which goes as is.
func do(t *testing.T, h http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := sonic.ConfigDefault.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(v))
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	if testing.Short() {
		t.Skip("integration test")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("lifeflow"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
