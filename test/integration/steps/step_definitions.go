package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/integration/adapters"
)

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

// iAmLoggedIn mints an access token for a fresh user. Every scenario gets
// its own user so session state never leaks between scenarios.
func (t *testContext) iAmLoggedIn() error {
	t.currentUserID = uuid.New()

	tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute)
	token, err := tokenService.GenerateAccessToken(context.Background(), t.currentUserID)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = token
	return nil
}

// theBoardIsReconciled forces a synchronous reload and waits for the sync
// status to settle. Session establishment kicks off a background fetch;
// waiting here keeps the scenario's subsequent mutations deterministic.
func (t *testContext) theBoardIsReconciled() error {
	if err := t.executeRequest(http.MethodPost, "/api/v1/state/reload", nil); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("reload returned status %d: %v", t.response.status, t.response.body)
	}

	for i := 0; i < 20; i++ {
		if err := t.executeRequest(http.MethodGet, "/api/v1/state", nil); err != nil {
			return err
		}
		if state := getFieldValue(t.response.body, "sync.state"); state == "synced" {
			// Give any in-flight establishment fetch time to land; it
			// carries the same empty dataset this reload just applied.
			time.Sleep(150 * time.Millisecond)
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return errors.New("sync status never settled")
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{habit_id}}", t.habitID)
	content = strings.ReplaceAll(content, "{{share_token}}", t.shareToken)
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
		raw:     bodyBytes,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture ids issued by the API for later placeholder substitution.
	if resp.StatusCode < 300 {
		if idStr, ok := responseBody["id"].(string); ok {
			t.habitID = idStr
		}
		if token, ok := responseBody["token"].(string); ok && token != "" {
			t.shareToken = token
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if value := getFieldValue(t.response.body, field); value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	actual := t.response.headers.Get(header)
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' = '%s', expected to contain '%s'", header, actual, expected)
	}
	return nil
}

// theDbShouldEventuallyContainObjectsInTheTable polls the table because
// remote writes behind optimistic mutations are asynchronous.
func (t *testContext) theDbShouldEventuallyContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	var count int
	for i := 0; i < 20; i++ {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.New(reflect.SliceOf(entityType))

		result := t.db.DbConn.Find(entitySlice.Interface())
		if result.Error != nil {
			return result.Error
		}

		count = entitySlice.Elem().Len()
		if count == quantity {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
