package steps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"github.com/finance-planner/backend/internal/application/usecase/recurring"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/test/integration/mock"
)

const (
	defaultPassword = "Str0ngPass!"
	schedulerLock   = "lock:recurring-scheduler"
)

var resetTokenPattern = regexp.MustCompile(`token=([^\s"'&<]+)`)

func (t *testContext) iAmRegisteredAs(username string) error {
	payload, _ := json.Marshal(map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": defaultPassword,
	})
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/register", payload); err != nil {
		return err
	}
	if err := t.theResponseStatusShouldBe(http.StatusCreated); err != nil {
		return err
	}
	return t.captureTokens(username)
}

func (t *testContext) iAmLoggedInAs(username string) error {
	t.accessToken = ""
	payload, _ := json.Marshal(map[string]string{
		"identifier": username,
		"password":   defaultPassword,
	})
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", payload); err != nil {
		return err
	}
	if err := t.theResponseStatusShouldBe(http.StatusOK); err != nil {
		return err
	}
	return t.captureTokens(username)
}

func (t *testContext) captureTokens(username string) error {
	body, err := t.responseObject()
	if err != nil {
		return err
	}
	access, _ := body["accessToken"].(string)
	refresh, _ := body["refreshToken"].(string)
	if access == "" || refresh == "" {
		return fmt.Errorf("auth response has no tokens: %s", t.response.raw)
	}
	t.accessToken = access
	t.refreshToken = refresh
	t.currentUser = username
	return nil
}

func (t *testContext) iLogOutOfTheSession() error {
	t.accessToken = ""
	return nil
}

func (t *testContext) todayIs(date string) error {
	day, err := entity.ParseDate(date)
	if err != nil {
		return err
	}
	t.clock.Freeze(day.Add(9 * time.Hour))
	return nil
}

func (t *testContext) theSchedulerLockIsHeldByAnotherInstance() error {
	ok, err := t.redis.SetNX(context.Background(), schedulerLock, "another-instance", t.injector.Config.Scheduler.LockTTL).Result()
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("scheduler lock was already held")
	}
	return nil
}

func (t *testContext) theSchedulerLockExpires() error {
	mock.ExpireKeys(t.injector.Config.Scheduler.LockTTL + time.Second)
	return nil
}

func (t *testContext) theSchedulerRunsACycle() error {
	return t.runCycle(nil)
}

func (t *testContext) theSchedulerRunsACycleOn(date string) error {
	day, err := entity.ParseDate(date)
	if err != nil {
		return err
	}
	return t.runCycle(&day)
}

func (t *testContext) runCycle(today *time.Time) error {
	output, err := t.injector.Scheduler.RunOnce(context.Background(), today)
	if err != nil {
		return fmt.Errorf("scheduler cycle failed: %w", err)
	}
	t.cycle = output
	return nil
}

func (t *testContext) runningACycleOnShouldFailWithCode(date, code string) error {
	err := t.theSchedulerRunsACycleOn(date)
	if err == nil {
		return fmt.Errorf("expected the cycle on %s to fail with %s", date, code)
	}
	var recErr *domainerror.RecurringError
	if !errors.As(err, &recErr) {
		return fmt.Errorf("expected a recurring error, got %w", err)
	}
	if string(recErr.Code) != code {
		return fmt.Errorf("expected code %s, got %s", code, recErr.Code)
	}
	return nil
}

func (t *testContext) theCycleShouldHaveMaterialized(count int) error {
	if t.cycle == nil {
		return errors.New("no scheduler cycle has run")
	}
	return expectCycle(t.cycle, count)
}

func expectCycle(output *recurring.MaterializeDueOutput, count int) error {
	if output.Materialized != count {
		return fmt.Errorf("expected %d materialized entries, got %d (due %d, skipped %d)",
			count, output.Materialized, output.Due, output.Skipped)
	}
	return nil
}

func (t *testContext) theEmailProviderAcceptsMessages() error {
	t.provider.SetResponse(http.MethodPost, "/emails", http.StatusOK, map[string]any{"id": "re_msg_1"})
	return nil
}

func (t *testContext) theEmailProviderRejectsMessagesWithStatus(status int) error {
	t.provider.SetResponse(http.MethodPost, "/emails", status, map[string]any{
		"statusCode": status,
		"name":       "validation_error",
		"message":    "invalid recipient address",
	})
	return nil
}

func (t *testContext) theEmailWorkerProcessesTheQueue() error {
	t.injector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) theEmailProviderShouldHaveReceived(count int) error {
	got := len(t.provider.GetRequests(http.MethodPost, "/emails"))
	if got != count {
		return fmt.Errorf("expected %d emails at the provider, got %d", count, got)
	}
	return nil
}

func (t *testContext) lastEmail() (map[string]any, error) {
	requests := t.provider.GetRequests(http.MethodPost, "/emails")
	if len(requests) == 0 {
		return nil, errors.New("the email provider received no emails")
	}
	return requests[len(requests)-1], nil
}

func (t *testContext) theLastEmailShouldBeAddressedTo(recipient, subject string) error {
	email, err := t.lastEmail()
	if err != nil {
		return err
	}

	to := fmt.Sprintf("%v", email["to"])
	if !strings.Contains(to, recipient) {
		return fmt.Errorf("expected email to %s, got %s", recipient, to)
	}
	if got := fmt.Sprintf("%v", email["subject"]); !strings.Contains(got, subject) {
		return fmt.Errorf("expected subject containing %q, got %q", subject, got)
	}
	return nil
}

func (t *testContext) iRememberTheResetTokenFromTheLastEmail() error {
	email, err := t.lastEmail()
	if err != nil {
		return err
	}

	text, _ := email["text"].(string)
	match := resetTokenPattern.FindStringSubmatch(text)
	if match == nil {
		return fmt.Errorf("no reset link in email: %q", text)
	}
	token, err := url.QueryUnescape(match[1])
	if err != nil {
		return err
	}
	t.resetToken = token
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	m, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(m).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}
	if err := query.Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	if count := entitySlicePtr.Elem().Len(); count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}
