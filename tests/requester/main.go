package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var productCodes = []string{"FR-001", "FR-002", "VRD-001", "VRD-002", "PO-001"}

// Нагрузка на API: чтение каталога, создание и просмотр заказов демо-пользователем.
func main() {
	baseURL := flag.String("url", "http://localhost:8080/api/v1", "api base url")
	email := flag.String("email", "cliente@demo.com", "customer email")
	password := flag.String("password", "password1", "customer password")
	flag.Parse()

	// повторная регистрация вернет 409, это нормально
	register(*baseURL, *email, *password)

	token, err := login(*baseURL, *email, *password)
	if err != nil {
		fmt.Println("Ошибка входа:", err)
		return
	}

	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(func() { doRequest(*baseURL, token) })
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func register(baseURL, email, password string) {
	body, _ := json.Marshal(map[string]string{
		"nombre":    "Cliente",
		"apellidos": "Demo",
		"email":     email,
		"password":  password,
	})
	resp, err := http.Post(baseURL+"/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("Ошибка регистрации:", err)
		return
	}
	resp.Body.Close()
}

func login(baseURL, email, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(baseURL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed: %s", resp.Status)
	}

	var res struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", err
	}
	return res.Token, nil
}

func doRequest(baseURL, token string) {
	var req *http.Request
	switch rand.Intn(4) {
	case 0:
		order, _ := json.Marshal(map[string]any{
			"items": []map[string]any{
				{"productoId": productCodes[rand.Intn(len(productCodes))], "cantidad": rand.Intn(5) + 1},
			},
		})
		req, _ = http.NewRequest(http.MethodPost, baseURL+"/orders", bytes.NewReader(order))
		req.Header.Set("Content-Type", "application/json")
	case 1:
		req, _ = http.NewRequest(http.MethodGet, baseURL+"/orders", nil)
	default:
		req, _ = http.NewRequest(http.MethodGet, baseURL+"/products/code/"+productCodes[rand.Intn(len(productCodes))], nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println(req.Method, req.URL.Path, "->", resp.Status)
	resp.Body.Close()
}
