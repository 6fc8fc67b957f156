package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
	"ulascansenturk/energy-forecast/internal/api/v1/handlers"
	"ulascansenturk/energy-forecast/internal/auth"
	"ulascansenturk/energy-forecast/internal/db"
	"ulascansenturk/energy-forecast/internal/db/account"
	"ulascansenturk/energy-forecast/internal/db/forecastrecord"
	"ulascansenturk/energy-forecast/internal/db/session"
	"ulascansenturk/energy-forecast/internal/providers"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ulascansenturk/energy-forecast/internal/service"
)

var (
	postgresContainer *pgTestContainers.PostgresContainer
	sharedDB          *gorm.DB
)

type testSetup struct {
	server        *httptest.Server
	weatherServer *httptest.Server
	db            *gorm.DB
}

const (
	dbName     = "test_api_database"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

func init() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func resetTables(t *testing.T, database *gorm.DB) {
	err := database.Migrator().DropTable(&session.Session{}, &forecastrecord.ForecastRecord{}, &account.Account{})
	require.NoError(t, err)

	err = db.AutoMigrate(database)
	require.NoError(t, err)
}

func SetupPostgres(t *testing.T) (*gorm.DB, func()) {
	if sharedDB != nil {
		resetTables(t, sharedDB)
		return sharedDB, func() {}
	}

	log.Info().Msg("Setting up new PostgreSQL container")

	ctx := context.Background()

	var err error
	postgresContainer, err = pgTestContainers.Run(ctx,
		"postgres:13.3",
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	host, err := postgresContainer.Host(context.Background())
	require.NoError(t, err)

	endpoint, err := postgresContainer.Endpoint(context.Background(), "")
	require.NoError(t, err)

	parts := strings.Split(endpoint, ":")
	port := parts[1]

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, dbUser, dbPassword, dbName,
	)

	sharedDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	log.Info().Msgf("Connected to database: %s on %s:%s", dbName, host, port)

	sqlDB, err := sharedDB.DB()
	require.NoError(t, err)

	err = sqlDB.Ping()
	require.NoError(t, err)

	resetTables(t, sharedDB)

	return sharedDB, func() {
		if postgresContainer != nil {
			log.Info().Msg("Terminating PostgreSQL container")
			if err := postgresContainer.Terminate(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to terminate PostgreSQL container")
			}
		}
	}
}

// newWeatherServer stands in for OpenWeatherMap. Oslo has 40% cloud and
// 10 m/s wind; any other city is reported as unavailable.
func newWeatherServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "Oslo" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"clouds": map[string]interface{}{"all": 40},
			"wind":   map[string]interface{}{"speed": 10},
			"main":   map[string]interface{}{"temp": 283.15},
		})
	}))
}

func setupTest(t *testing.T) *testSetup {
	database, _ := SetupPostgres(t)

	accountRepo := account.NewRepository(database)
	forecastRepo := forecastrecord.NewRepository(database)
	sessionRepo := session.NewRepository(database)

	authService, err := service.NewAuthService(accountRepo, auth.NewBcryptHasher(bcrypt.MinCost))
	require.NoError(t, err)

	weatherServer := newWeatherServer()
	weatherClient := providers.NewOpenWeatherClient("test_api_key", weatherServer.URL, 5*time.Second)
	forecastService := service.NewForecastService(weatherClient, forecastRepo, time.Now)

	sessionManager := auth.NewSessionManager("integration-secret", time.Hour, sessionRepo, accountRepo, time.Now)

	handler := handlers.NewHandler(authService, forecastService, sessionManager, handlers.Options{
		Timeout:      10 * time.Second,
		HistoryLimit: 10,
	})

	return &testSetup{
		server:        httptest.NewServer(handler),
		weatherServer: weatherServer,
		db:            database,
	}
}

func (ts *testSetup) close() {
	ts.server.Close()
	ts.weatherServer.Close()
}

func (ts *testSetup) newClient(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (ts *testSetup) postForm(t *testing.T, client *http.Client, path string, values url.Values) (*http.Response, string) {
	resp, err := client.PostForm(ts.server.URL+path, values)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func (ts *testSetup) get(t *testing.T, client *http.Client, path string) (*http.Response, string) {
	resp, err := client.Get(ts.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func (ts *testSetup) register(t *testing.T, client *http.Client, username, password, location string) *http.Response {
	resp, _ := ts.postForm(t, client, "/register", url.Values{
		"username": {username},
		"password": {password},
		"location": {location},
	})
	return resp
}

func (ts *testSetup) login(t *testing.T, client *http.Client, username, password string) *http.Response {
	resp, _ := ts.postForm(t, client, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	return resp
}

func (ts *testSetup) accountID(t *testing.T, username string) uint {
	var acc account.Account
	require.NoError(t, ts.db.Where("username = ?", username).First(&acc).Error)
	return acc.ID
}

func (ts *testSetup) count(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	var n int64
	require.NoError(t, ts.db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}

func TestEnergyForecastService(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	_, cleanup := SetupPostgres(t)
	defer cleanup()

	t.Run("RegisterLoginForecast", func(t *testing.T) {
		log.Info().Msg("➡️ Running test: RegisterLoginForecast")

		ts := setupTest(t)
		defer ts.close()
		client := ts.newClient(t)

		resp := ts.register(t, client, "alice", "hunter22", "Oslo")
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))

		resp = ts.login(t, client, "alice", "hunter22")
		require.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

		resp, body := ts.get(t, client, "/forecast")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var forecast handlers.ForecastResponse
		require.NoError(t, json.Unmarshal([]byte(body), &forecast))
		assert.Equal(t, 12.0, forecast.SolarEnergy)
		assert.Equal(t, 5.0, forecast.WindEnergy)

		var records []forecastrecord.ForecastRecord
		require.NoError(t, ts.db.Where("account_id = ?", ts.accountID(t, "alice")).Find(&records).Error)
		require.Len(t, records, 1)
		assert.Equal(t, time.Now().Format(forecastrecord.DateLayout), records[0].Date)
		assert.Equal(t, 12.0, records[0].SolarEnergy)
		assert.Equal(t, 5.0, records[0].WindEnergy)

		resp, body = ts.get(t, client, "/dashboard")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "alice")
		assert.Contains(t, body, records[0].Date)

		log.Info().Msg("✅ TEST PASSED: RegisterLoginForecast")
	})

	t.Run("DuplicateRegistrationKeepsOneAccount", func(t *testing.T) {
		ts := setupTest(t)
		defer ts.close()
		client := ts.newClient(t)

		resp := ts.register(t, client, "alice", "hunter22", "Oslo")
		require.Equal(t, http.StatusFound, resp.StatusCode)

		resp = ts.register(t, client, "alice", "other-password", "Bergen")
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		assert.Equal(t, int64(1), ts.count(t, &account.Account{}, "username = ?", "alice"))

		resp = ts.login(t, client, "alice", "other-password")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("ConcurrentRegistrationKeepsOneAccount", func(t *testing.T) {
		ts := setupTest(t)
		defer ts.close()

		const attempts = 8

		client := ts.newClient(t)
		var wg sync.WaitGroup
		statuses := make(chan int, attempts)
		start := make(chan struct{})

		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start

				resp, err := client.PostForm(ts.server.URL+"/register", url.Values{
					"username": {"racer"},
					"password": {fmt.Sprintf("pw-%d", i)},
					"location": {"Oslo"},
				})
				if !assert.NoError(t, err) {
					return
				}
				resp.Body.Close()
				statuses <- resp.StatusCode
			}(i)
		}

		close(start)
		wg.Wait()
		close(statuses)

		counts := map[int]int{}
		for status := range statuses {
			counts[status]++
		}

		assert.Equal(t, 1, counts[http.StatusFound])
		assert.Equal(t, attempts-1, counts[http.StatusConflict])
		assert.Equal(t, int64(1), ts.count(t, &account.Account{}, "username = ?", "racer"))
	})

	t.Run("InvalidCredentialsAreIndistinguishable", func(t *testing.T) {
		ts := setupTest(t)
		defer ts.close()
		client := ts.newClient(t)

		require.Equal(t, http.StatusFound, ts.register(t, client, "alice", "hunter22", "Oslo").StatusCode)

		wrongPassword, wrongPasswordBody := ts.postForm(t, client, "/login", url.Values{
			"username": {"alice"}, "password": {"nope"},
		})
		unknownUser, unknownUserBody := ts.postForm(t, client, "/login", url.Values{
			"username": {"mallory"}, "password": {"nope"},
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
		assert.Equal(t, wrongPassword.StatusCode, unknownUser.StatusCode)
		assert.Equal(t, "Invalid credentials!", wrongPasswordBody)
		assert.Equal(t, wrongPasswordBody, unknownUserBody)
		assert.Equal(t, int64(0), ts.count(t, &session.Session{}, "1 = 1"))
	})

	t.Run("ProviderFailureStoresNothing", func(t *testing.T) {
		ts := setupTest(t)
		defer ts.close()
		client := ts.newClient(t)

		require.Equal(t, http.StatusFound, ts.register(t, client, "bob", "pw", "Atlantis").StatusCode)
		require.Equal(t, http.StatusFound, ts.login(t, client, "bob", "pw").StatusCode)

		resp, body := ts.get(t, client, "/forecast")
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var errResp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal([]byte(body), &errResp))
		assert.Equal(t, "Failed to fetch data", errResp.Error)

		assert.Equal(t, int64(0), ts.count(t, &forecastrecord.ForecastRecord{}, "account_id = ?", ts.accountID(t, "bob")))
	})

	t.Run("UnauthenticatedRequestsRedirect", func(t *testing.T) {
		ts := setupTest(t)
		defer ts.close()
		client := ts.newClient(t)

		for _, path := range []string{"/forecast", "/dashboard"} {
			resp, _ := ts.get(t, client, path)
			assert.Equal(t, http.StatusFound, resp.StatusCode, path)
			assert.Equal(t, "/login", resp.Header.Get("Location"), path)
		}

		assert.Equal(t, int64(0), ts.count(t, &forecastrecord.ForecastRecord{}, "1 = 1"))
	})

	t.Run("LogoutRevokesSession", func(t *testing.T) {
		ts := setupTest(t)
		defer ts.close()
		client := ts.newClient(t)

		require.Equal(t, http.StatusFound, ts.register(t, client, "alice", "hunter22", "Oslo").StatusCode)
		resp := ts.login(t, client, "alice", "hunter22")
		require.Equal(t, http.StatusFound, resp.StatusCode)

		var token string
		for _, c := range resp.Cookies() {
			if c.Name == "session" {
				token = c.Value
			}
		}
		require.NotEmpty(t, token)
		assert.Equal(t, int64(1), ts.count(t, &session.Session{}, "account_id = ?", ts.accountID(t, "alice")))

		resp, _ = ts.get(t, client, "/logout")
		assert.Equal(t, http.StatusFound, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
		assert.Equal(t, int64(0), ts.count(t, &session.Session{}, "account_id = ?", ts.accountID(t, "alice")))

		// Replaying the old token must not get past the session check.
		req, err := http.NewRequest(http.MethodGet, ts.server.URL+"/forecast", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "session", Value: token})

		bare := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
		replay, err := bare.Do(req)
		require.NoError(t, err)
		replay.Body.Close()

		assert.Equal(t, http.StatusFound, replay.StatusCode)
		assert.Equal(t, "/login", replay.Header.Get("Location"))
	})

	t.Run("DeletingAccountCascades", func(t *testing.T) {
		ts := setupTest(t)
		defer ts.close()
		client := ts.newClient(t)

		require.Equal(t, http.StatusFound, ts.register(t, client, "alice", "hunter22", "Oslo").StatusCode)
		require.Equal(t, http.StatusFound, ts.login(t, client, "alice", "hunter22").StatusCode)
		resp, _ := ts.get(t, client, "/forecast")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		id := ts.accountID(t, "alice")
		require.NoError(t, ts.db.Delete(&account.Account{}, id).Error)

		assert.Equal(t, int64(0), ts.count(t, &forecastrecord.ForecastRecord{}, "account_id = ?", id))
		assert.Equal(t, int64(0), ts.count(t, &session.Session{}, "account_id = ?", id))
	})
}
