// Package client provides a typed HTTP client for the timetable service.
// One method per server operation, explicit serialization, no generated
// code. The token returned by Login is kept on the client and attached
// verbatim to the Authorization header of subsequent requests.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Sentinel errors for the status codes callers branch on.
var (
	ErrUnauthorized  = errors.New("missing or malformed token")
	ErrForbidden     = errors.New("token rejected or not the resource owner")
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidEmail  = errors.New("email address outside the school domain")
	ErrUsernameTaken = errors.New("username already taken")
	ErrLoginFailed   = errors.New("wrong username or password")
)

// Non-standard status codes the server uses for registration failures.
const (
	statusInvalidEmail  = 420
	statusUsernameTaken = 422
)

// Client talks to one timetable service instance. It is safe for
// sequential use; guard it yourself when sharing across goroutines, as
// Login mutates the stored token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option customizes the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken preloads a bearer token, skipping Login.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New builds a Client against the base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Token returns the currently held bearer token, empty when logged out.
func (c *Client) Token() string {
	return c.token
}

// Login obtains a token for the credentials and stores it on the client.
// The server reports bad credentials with an empty body, which surfaces
// here as ErrLoginFailed.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/schueler/login", jsonBody(map[string]string{
		"username": username,
		"password": password,
	}))
	if err != nil {
		return "", err
	}

	token := strings.TrimSpace(string(body))
	if token == "" {
		return "", ErrLoginFailed
	}
	c.token = token

	return token, nil
}

// RegisterRequest carries the fields of a new account.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Level     string `json:"level"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/schueler/register", jsonBody(req))

	return err
}

// ConfirmUser redeems an emailed confirmation key.
func (c *Client) ConfirmUser(ctx context.Context, username, key string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("key", key)

	_, err := c.do(ctx, http.MethodPost, "/schueler/confirmuser", formBody(form))

	return err
}

// Echo mirrors a message off the unauthenticated test endpoint.
func (c *Client) Echo(ctx context.Context, message string) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/schueler/echo?message="+url.QueryEscape(message), nil)

	return string(body), err
}

// EchoAuth mirrors a message off the token-guarded test endpoint, which
// makes it a cheap token validity probe.
func (c *Client) EchoAuth(ctx context.Context, message string) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/schueler/echo_auth?message="+url.QueryEscape(message), nil)

	return string(body), err
}

// Subject mirrors the server's subject payload.
type Subject struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// Teacher mirrors the server's teacher payload.
type Teacher struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// Level mirrors the server's school level payload.
type Level struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Course mirrors the server's course payload.
type Course struct {
	ID      uint     `json:"id"`
	Name    string   `json:"name"`
	Level   string   `json:"level"`
	Subject *Subject `json:"subject,omitempty"`
	Teacher *Teacher `json:"teacher,omitempty"`
}

// Cancellation mirrors the server's cancellation payload.
type Cancellation struct {
	ID       uint      `json:"id"`
	CourseID uint      `json:"courseId"`
	Date     time.Time `json:"date"`
	Comment  string    `json:"comment"`
}

// Student mirrors the server's student payload.
type Student struct {
	Username  string     `json:"username"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Level     string     `json:"level"`
	Admin     bool       `json:"admin"`
	Subjects  []*Subject `json:"subjects"`
}

// Subjects lists the subjects offered for course selection. Requires a token.
func (c *Client) Subjects(ctx context.Context) ([]*Subject, error) {
	var subjects []*Subject
	if err := c.getJSON(ctx, "/schueler/faecherauswahl", &subjects); err != nil {
		return nil, err
	}

	return subjects, nil
}

// Courses lists all courses.
func (c *Client) Courses(ctx context.Context) ([]*Course, error) {
	var courses []*Course
	if err := c.getJSON(ctx, "/schueler/kurse", &courses); err != nil {
		return nil, err
	}

	return courses, nil
}

// Teachers lists the teaching staff.
func (c *Client) Teachers(ctx context.Context) ([]*Teacher, error) {
	var teachers []*Teacher
	if err := c.getJSON(ctx, "/schueler/lehrer", &teachers); err != nil {
		return nil, err
	}

	return teachers, nil
}

// Levels lists the school levels.
func (c *Client) Levels(ctx context.Context) ([]*Level, error) {
	var levels []*Level
	if err := c.getJSON(ctx, "/schueler/stufen", &levels); err != nil {
		return nil, err
	}

	return levels, nil
}

// Cancellations lists the recorded lesson cancellations.
func (c *Client) Cancellations(ctx context.Context) ([]*Cancellation, error) {
	var cancellations []*Cancellation
	if err := c.getJSON(ctx, "/schueler/entfaelle", &cancellations); err != nil {
		return nil, err
	}

	return cancellations, nil
}

// StudentWithSubjects fetches a student and their chosen subjects. Only the
// owner or an admin token passes the gate.
func (c *Client) StudentWithSubjects(ctx context.Context, username string) (*Student, error) {
	var student Student
	if err := c.getJSON(ctx, "/schueler/schueler-mit-faechern/"+url.PathEscape(username), &student); err != nil {
		return nil, err
	}

	return &student, nil
}

// StudentData carries the editable profile fields.
type StudentData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Level     string `json:"level"`
}

// StoreStudentData updates the student's profile fields.
func (c *Client) StoreStudentData(ctx context.Context, username string, data StudentData) error {
	_, err := c.do(ctx, http.MethodPost, "/schueler/schuelerdaten/"+url.PathEscape(username), jsonBody(data))

	return err
}

// StoreStudentCourses replaces the student's course enrolment.
func (c *Client) StoreStudentCourses(ctx context.Context, username string, courseIDs []uint) error {
	_, err := c.do(ctx, http.MethodPost, "/schueler/kurse/"+url.PathEscape(username), jsonBody(courseIDs))

	return err
}

// ChangePassword replaces the student's password.
func (c *Client) ChangePassword(ctx context.Context, username, newPassword string) error {
	_, err := c.do(ctx, http.MethodPut, "/schueler/changepassword/"+url.PathEscape(username),
		jsonBody(map[string]string{"password": newPassword}))

	return err
}

// DeleteUser removes the account.
func (c *Client) DeleteUser(ctx context.Context, username string) error {
	if _, err := c.do(ctx, http.MethodDelete, "/schueler/delete/"+url.PathEscape(username), nil); err != nil {
		return err
	}

	return nil
}

type payload struct {
	contentType string
	reader      io.Reader
}

func jsonBody(v any) *payload {
	buf, err := json.Marshal(v)
	if err != nil {
		// Only reachable with unmarshalable values, which the typed
		// request structs rule out.
		panic(err)
	}

	return &payload{contentType: "application/json", reader: bytes.NewReader(buf)}
}

func formBody(form url.Values) *payload {
	return &payload{
		contentType: "application/x-www-form-urlencoded",
		reader:      strings.NewReader(form.Encode()),
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	return errors.Wrap(json.Unmarshal(body, out), "failed to decode response body")
}

func (c *Client) do(ctx context.Context, method, path string, body *payload) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = body.reader
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", body.contentType)
	}
	// The server expects the bare token, not a "Bearer" scheme.
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if err := statusToError(resp.StatusCode, respBody); err != nil {
		return nil, err
	}

	return respBody, nil
}

func statusToError(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case statusInvalidEmail:
		return ErrInvalidEmail
	case statusUsernameTaken:
		return ErrUsernameTaken
	}

	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(status)
	}

	return errors.Errorf("server answered %d: %s", status, message)
}
