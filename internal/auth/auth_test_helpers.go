package auth

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/RazanRezq/jadara-sub002/internal/database"
	"github.com/RazanRezq/jadara-sub002/internal/testutil"
)

// GetAccessToken is a helper function to obtain an access token for a user by simulating a login API call.
// It takes the testing object, database connection, username, and password as parameters.
// It returns the access token as a string and any error encountered during the process.
func GetAccessToken(
	t *testing.T,
	db *database.DBinstanceStruct,
	username string,
	password string,
) (string, error) {
	t.Helper()
	if len(secretKey) == 0 {
		Configure("test-secret", 0)
	}
	handler := NewLocalAuthHandler(db)
	rec, resp, err := testutil.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if rec.Code != http.StatusOK {
		return "", fmt.Errorf("login Failed: status %d, body: %s", rec.Code, rec.Body.String())
	}
	token, ok := resp["accessToken"].(string)
	if !ok {
		return "", fmt.Errorf("login Failed: no accessToken in response: %s", rec.Body.String())
	}
	return token, nil
}
