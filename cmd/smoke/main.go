package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

// Walks a running storefront through its public and admin endpoints.
// Usage: STOREFRONT_URL=http://localhost:3000/api ADMIN_PASSWORD=... go run ./cmd/smoke

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

var (
	baseURL = getEnv("STOREFRONT_URL", "http://localhost:3000/api")
	client  = &http.Client{Timeout: 10 * time.Second}
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func prettyPrint(raw json.RawMessage) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func sendRequest(method, path, token string, body interface{}) (int, *envelope, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+path, bodyReader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, &env, nil
}

func step(title, method, path, token string, body interface{}) *envelope {
	color.Yellow("\n%s", title)
	status, env, err := sendRequest(method, path, token, body)
	if err != nil {
		color.Red("Failed: %v", err)
		return nil
	}
	if status >= 400 {
		color.Red("Status: %d %s", status, env.Message)
		return env
	}
	color.Green("Status: %d", status)
	prettyPrint(env.Data)
	return env
}

func main() {
	color.Cyan("Storefront smoke test against %s", baseURL)

	step("1. List catalog", http.MethodGet, "/products", "", nil)
	step("2. Categories", http.MethodGet, "/products/categories", "", nil)
	step("3. Search 'bpc'", http.MethodGet, "/products?search=bpc", "", nil)
	step("4. Category 'cognitive'", http.MethodGet, "/products?category=cognitive", "", nil)

	var token string
	if env := step("5. Admin login", http.MethodPost, "/admin/login", "", map[string]string{
		"password": getEnv("ADMIN_PASSWORD", "admin123"),
	}); env != nil && env.Success {
		var login struct {
			AccessToken string `json:"access_token"`
		}
		_ = json.Unmarshal(env.Data, &login)
		token = login.AccessToken
	}

	if token != "" {
		step("6. Add product", http.MethodPost, "/products", token, map[string]interface{}{
			"name":        fmt.Sprintf("Smoke-%d", time.Now().Unix()),
			"category":    "skin",
			"purity":      99.3,
			"price":       30,
			"description": "Added by the smoke test",
		})
	}

	env := step("7. Open chat session", http.MethodPost, "/chat/v1/sessions", "", nil)
	if env != nil && env.Success {
		var session struct {
			Id string `json:"id"`
		}
		_ = json.Unmarshal(env.Data, &session)
		path := "/chat/v1/sessions/" + session.Id + "/messages"
		for _, utterance := range []string{"hello", "recovery", "anything under 100?", "purity"} {
			step("   say: "+utterance, http.MethodPost, path, "", map[string]string{"chat": utterance})
		}
		time.Sleep(time.Second)
		step("8. Transcript", http.MethodGet, path, "", nil)
	}

	step("9. Contact form", http.MethodPost, "/contact", "", map[string]string{
		"name":    "Smoke Test",
		"email":   "smoke@example.com",
		"message": "Ping from the smoke test",
	})

	color.Cyan("\nDone.")
}
