package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxUsers int = 200
var httpHostPort string = "127.0.0.1:8080"

// the admin bootstrapped by `accuport initdb --admin ...`, edit before running
var adminUsername string = "admin"
var adminPassword string = "set-me-first"

type benchUser struct {
	username string
	password string
	id       uint
	token    string
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	adminToken := login(adminUsername, adminPassword)
	fmt.Printf("admin logged in\n")

	vesselID := createVessel(adminToken)
	fmt.Printf("created bench vessel id=%v\n", vesselID)

	users := make([]benchUser, maxUsers)
	for i := 0; i < maxUsers; i++ {
		users[i].username = "bench." + uuid.NewString()[:13]
	}
	fmt.Printf("generated %v usernames\n", maxUsers)

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxUsers; i++ {
		i := i
		wg.Add(1)
		go func() {
			users[i].id, users[i].password = createUser(adminToken, users[i].username)
			assignVessel(adminToken, users[i].id, vesselID)
			fmt.Printf("\rcreated and assigned user %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated and assigned %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers*2)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxUsers; i++ {
		i := i
		wg.Add(1)
		go func() {
			users[i].token = login(users[i].username, users[i].password)
			fmt.Printf("\rlogged in user %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rlogged in %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxUsers; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(users[i], vesselID)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v users: used time=%v seconds, throughput=%v action/second\n",
		maxUsers, usedTime.Seconds(), float64(maxUsers*3)/usedTime.Seconds(),
	)
}

func apiRequest(method, path, token string, payload any) *http.Response {
	var body io.Reader
	if payload != nil {
		jsonData, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonData)
	}
	req, err := http.NewRequest(method, fmt.Sprintf("http://%s%s", httpHostPort, path), body)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	return resp
}

func login(username, password string) string {
	resp := apiRequest("POST", "/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		panic(fmt.Sprintf("login failed for %v: status %v", username, resp.StatusCode))
	}

	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		panic(err)
	}
	return parsed.Token
}

func createVessel(adminToken string) uint {
	resp := apiRequest("POST", "/api/admin/vessels", adminToken, map[string]string{
		"code": "MV-BENCH-" + uuid.NewString()[:8],
		"name": "MV Benchmark",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		panic(fmt.Sprintf("create vessel failed: status %v", resp.StatusCode))
	}

	var parsed struct {
		ID uint `json:"ID"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		panic(err)
	}
	return parsed.ID
}

func createUser(adminToken, username string) (uint, string) {
	resp := apiRequest("POST", "/api/admin/users", adminToken, map[string]string{
		"username": username,
		"fullname": "Bench User",
		"role":     "vessel_user",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		panic(fmt.Sprintf("create user %v failed: status %v", username, resp.StatusCode))
	}

	var parsed struct {
		User struct {
			ID uint `json:"ID"`
		} `json:"user"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		panic(err)
	}
	return parsed.User.ID, parsed.Password
}

func assignVessel(adminToken string, userID, vesselID uint) {
	resp := apiRequest("POST", "/api/admin/assignments", adminToken, map[string]int{
		"user":   int(userID),
		"vessel": int(vesselID),
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		panic(fmt.Sprintf("assign vessel failed: status %v", resp.StatusCode))
	}
}

func doAction(user benchUser, vesselID uint) {
	actions := []func(){
		genGetAction(user.token, "/api/vessels"),
		genGetAction(user.token, fmt.Sprintf("/api/vessels/%v/alerts", vesselID)),
		genGetAction(user.token, fmt.Sprintf("/api/vessels/%v/summary", vesselID)),
	}
	actionNames := []string{
		"ListVessels",
		"GetAlerts",
		"GetSummary",
	}
	rand.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for user %v", actionNames[index], user.username)
		time.Sleep(time.Duration(100+rand.Int31n(1000)) * time.Millisecond)
	}
}

func genGetAction(token, path string) func() {
	return func() {
		resp := apiRequest("GET", path, token, nil)
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v for %v\n", resp.StatusCode, path)
		}
	}
}
