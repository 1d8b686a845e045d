// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/finance-planner/backend/config"
	"github.com/finance-planner/backend/internal/application/usecase/recurring"
	"github.com/finance-planner/backend/internal/infra/dependency"
	"github.com/finance-planner/backend/internal/infra/logger"
	"github.com/finance-planner/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-integration-suite"

// environment is shared by every scenario in the suite.
type environment struct {
	server   *httptest.Server
	injector *dependency.Injector
	db       *mock.Db
	redis    *redis.Client
	clock    *mock.Clock
	provider *mock.ApiMock
}

var (
	envInit sync.Once
	env     *environment
	envErr  error
)

// testContext holds the state of a single scenario.
type testContext struct {
	*environment

	client   *http.Client
	headers  map[string]string
	response *response

	accessToken  string
	refreshToken string
	resetToken   string
	currentUser  string

	ids   map[string]uuid.UUID
	cycle *recurring.MaterializeDueOutput
}

type response struct {
	status int
	header http.Header
	raw    []byte
	body   any
}

// InitializeTestSuite builds the application once for the whole run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		logger.Setup(os.Stderr, "warn", "text")
		if _, err := setupEnvironment(); err != nil {
			panic(err)
		}
	})

	ctx.AfterSuite(func() {
		if env == nil {
			return
		}
		env.server.Close()
		env.provider.Close()
	})
}

func setupEnvironment() (*environment, error) {
	envInit.Do(func() {
		provider := mock.NewApiServer()
		provider.Start()

		for key, value := range map[string]string{
			"ENVIRONMENT":          "test",
			"DB_DRIVER":            config.DriverSQLite,
			"JWT_SECRET":           testJWTSecret,
			"BCRYPT_COST":          "4",
			"SCHEDULER_LOCK_TTL":   "1m",
			"RESEND_API_KEY":       "re_integration",
			"RESEND_BASE_URL":      provider.GetUrl(),
			"EMAIL_WORKER_ENABLED": "false",
		} {
			_ = os.Setenv(key, value)
		}

		cfg, err := config.Parse()
		if err != nil {
			envErr = fmt.Errorf("failed to parse config: %w", err)
			return
		}

		db := mock.NewDb()
		redisClient := mock.NewRedis()
		clock := mock.NewClock()

		injector, err := dependency.NewInjector(cfg, db.DbConn, dependency.Options{
			Clock:    clock,
			Redis:    redisClient,
			Registry: prometheus.NewRegistry(),
		})
		if err != nil {
			envErr = fmt.Errorf("failed to build injector: %w", err)
			return
		}

		env = &environment{
			server:   httptest.NewServer(injector.Router.Setup(cfg.Server.Environment)),
			injector: injector,
			db:       db,
			redis:    redisClient,
			clock:    clock,
			provider: provider,
		}
	})
	return env, envErr
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^I am registered as "([^"]*)"$`, test.iAmRegisteredAs)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^I log out of the session$`, test.iLogOutOfTheSession)

	// Clock and scheduler steps
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)
	ctx.Given(`^the scheduler lock is held by another instance$`, test.theSchedulerLockIsHeldByAnotherInstance)
	ctx.Given(`^the scheduler lock expires$`, test.theSchedulerLockExpires)
	ctx.When(`^the scheduler runs a cycle$`, test.theSchedulerRunsACycle)
	ctx.When(`^the scheduler runs a cycle on "([^"]*)"$`, test.theSchedulerRunsACycleOn)
	ctx.Then(`^running a cycle on "([^"]*)" should fail with code "([^"]*)"$`, test.runningACycleOnShouldFailWithCode)
	ctx.Then(`^the cycle should have materialized (\d+) entr(?:y|ies)$`, test.theCycleShouldHaveMaterialized)

	// Email steps
	ctx.Given(`^the email provider accepts messages$`, test.theEmailProviderAcceptsMessages)
	ctx.Given(`^the email provider rejects messages with status (\d+)$`, test.theEmailProviderRejectsMessagesWithStatus)
	ctx.When(`^the email worker processes the queue$`, test.theEmailWorkerProcessesTheQueue)
	ctx.Then(`^the email provider should have received (\d+) emails?$`, test.theEmailProviderShouldHaveReceived)
	ctx.Then(`^the last email should be addressed to "([^"]*)" with subject containing "([^"]*)"$`, test.theLastEmailShouldBeAddressedTo)
	ctx.Then(`^I remember the reset token from the last email$`, test.iRememberTheResetTokenFromTheLastEmail)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
	ctx.Then(`^the response should have (\d+) items?$`, test.theResponseShouldHaveItems)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should be "([^"]*)"$`, test.theResponseHeaderShouldBe)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	e, err := setupEnvironment()
	if err != nil {
		return err
	}
	t.environment = e

	t.headers = map[string]string{}
	t.response = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.currentUser = ""
	t.ids = map[string]uuid.UUID{}
	t.cycle = nil

	t.clock.Release()
	t.provider.Reset()
	if err := mock.ClearRedis(t.redis); err != nil {
		return err
	}
	return t.db.ClearDB()
}

func (t *testContext) theAPIServerIsRunning() error {
	if t.environment == nil || t.server == nil {
		return fmt.Errorf("test server is not running: %v", envErr)
	}
	return nil
}
