package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AccountInfo:
		o.printAccountInfo(v)
	case LoginResult:
		o.printLoginResult(v)
	case AccountAge:
		o.printAccountAge(v)
	case UserRecord:
		o.printJSON(map[string]any(v))
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AccountInfo response type (matches API)
type AccountInfo struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Age      int    `json:"age"`
	Active   bool   `json:"active"`
}

// LoginResult response type
type LoginResult struct {
	Authenticated bool       `json:"authenticated"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
}

// AccountAge response type
type AccountAge struct {
	Days int `json:"days"`
}

// UserRecord is an opaque remote user record
type UserRecord map[string]any

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAccountInfo(info AccountInfo) {
	fmt.Printf("Username: %s\n", info.Username)
	fmt.Printf("Email:    %s\n", info.Email)
	fmt.Printf("Age:      %d\n", info.Age)
	fmt.Printf("Active:   %t\n", info.Active)
}

func (o *Output) printLoginResult(result LoginResult) {
	if result.Authenticated {
		fmt.Println("Login successful")
		if result.LastLogin != nil {
			fmt.Printf("Last login: %s\n", result.LastLogin.Format(time.RFC3339))
		}
	} else {
		fmt.Println("Login failed")
	}
}

func (o *Output) printAccountAge(age AccountAge) {
	fmt.Printf("Account age: %d days\n", age.Days)
}

func (o *Output) printHealthResult(result HealthResult) {
	fmt.Printf("Status: %s\n", result.Status)
}
