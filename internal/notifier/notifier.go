// Package notifier talks to the lifecompass tray application, the platform
// collaborator that owns desktop notifications and the recurring daily
// reminder trigger. Everything here is best-effort: the tray not running is
// an error the caller logs and moves past, never a failure it propagates.
package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/LLuCCKKyyyy/lifecompass/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// Scheduler is the notification-scheduling surface the settings module
// depends on. Both calls are best-effort and carry no result beyond error.
type Scheduler interface {
	// ScheduleDaily replaces any existing daily reminder with one firing at
	// hour:minute every day.
	ScheduleDaily(hour, minute int) error
	// CancelAll cancels every scheduled reminder.
	CancelAll() error
}

// Notifier implements Scheduler against the tray application's local webhook.
type Notifier struct{}

func New() *Notifier {
	return &Notifier{}
}

type notifyPayload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

type schedulePayload struct {
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
	Repeats bool   `json:"repeats"`
	Title   string `json:"title"`
	Body    string `json:"body"`
}

// Notify shows a one-off desktop notification.
func (n *Notifier) Notify(text string) error {
	port, secret, err := trayEndpoint()
	if err != nil {
		return err
	}
	return post(port, secret, "/notify", notifyPayload{
		Text:       text,
		DurationMs: constants.NotificationDurationMs,
	})
}

// ScheduleDaily replaces the tray's daily reminder trigger. The tray cancels
// any previously scheduled reminder before installing the new one.
func (n *Notifier) ScheduleDaily(hour, minute int) error {
	port, secret, err := trayEndpoint()
	if err != nil {
		return err
	}
	return post(port, secret, "/schedule", schedulePayload{
		Hour:    hour,
		Minute:  minute,
		Repeats: true,
		Title:   constants.ReminderTitle,
		Body:    constants.ReminderBody,
	})
}

// CancelAll cancels every scheduled reminder in the tray.
func (n *Notifier) CancelAll() error {
	port, secret, err := trayEndpoint()
	if err != nil {
		return err
	}
	return post(port, secret, "/cancel", struct{}{})
}

// TrayConfigDir returns the configuration directory used by the tray
// application, honoring a custom lockfile dir in its settings.json.
func TrayConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	settingsPath := filepath.Join(trayConfigDir, "settings.json")
	if data, err := os.ReadFile(settingsPath); err == nil {
		var settings struct {
			Settings struct {
				LockfileDir *string `json:"lockfile_dir"`
			} `json:"settings"`
		}
		if err := json.Unmarshal(data, &settings); err == nil {
			if settings.Settings.LockfileDir != nil && *settings.Settings.LockfileDir != "" {
				return *settings.Settings.LockfileDir, nil
			}
		}
	}

	return trayConfigDir, nil
}

func trayEndpoint() (port, secret string, err error) {
	dir, err := TrayConfigDir()
	if err != nil {
		return "", "", err
	}
	return readLockfile(filepath.Join(dir, constants.NotifierLockfileName))
}

// readLockfile parses the tray's "port|pid|secret" lockfile and verifies the
// recorded process is actually the tray app.
func readLockfile(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("lifecompass-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("lifecompass-tray process not running")
	}
	if !strings.HasPrefix(process.Executable(), "lifecompass-tray") {
		return "", "", fmt.Errorf("process with PID %d is not lifecompass-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

func post(port, secret, path string, payload interface{}) error {
	url := fmt.Sprintf("http://127.0.0.1:%s%s", port, path)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Lifecompass-Secret", secret)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("tray request failed with status %d: %s", res.StatusCode, string(body))
}
