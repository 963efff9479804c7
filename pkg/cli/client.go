package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	HTTPStatus int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.HTTPStatus, e.Message)
}

// Client is a thin HTTP client for the biomine API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

// ColumnView mirrors the server's column model.
type ColumnView struct {
	Name         string `json:"name"`
	Index        int    `json:"index"`
	DisplayOrder int    `json:"display_order"`
	Visible      bool   `json:"visible"`
}

// TableView mirrors one rendered window of a result table. EndRow is absent
// when the window holds no rows.
type TableView struct {
	TableID      string       `json:"table_id"`
	StartRow     int          `json:"start_row"`
	EndRow       *int         `json:"end_row,omitempty"`
	PageSize     int          `json:"page_size"`
	Size         int          `json:"size"`
	SizeEstimate bool         `json:"size_estimate"`
	IsFirstPage  bool         `json:"is_first_page"`
	IsLastPage   bool         `json:"is_last_page"`
	Columns      []ColumnView `json:"columns"`
	Rows         [][]string   `json:"rows"`
}

// Template mirrors a saved query.
type Template struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Aspect  string `json:"aspect"`
	SQL     string `json:"sql"`
	Comment string `json:"comment"`
}

// AspectSummary mirrors one aspect of the begin page.
type AspectSummary struct {
	Aspect    string     `json:"aspect"`
	Total     int        `json:"total"`
	Templates []Template `json:"templates"`
}

// HistoryEntry mirrors one recorded query execution.
type HistoryEntry struct {
	ID         string `json:"id"`
	SQL        string `json:"sql"`
	TableID    string `json:"table_id"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	CreatedAt  string `json:"created_at"`
}

func (c *Client) ExecuteQuery(sqlText string) (*TableView, error) {
	var view TableView
	err := c.do(http.MethodPost, "/v1/queries", map[string]string{"sql": sqlText}, &view)
	return &view, err
}

func (c *Client) GetTable(id string) (*TableView, error) {
	var view TableView
	err := c.do(http.MethodGet, "/v1/tables/"+id, nil, &view)
	return &view, err
}

func (c *Client) ChangePage(id, action string) (*TableView, error) {
	var view TableView
	err := c.do(http.MethodPost, "/v1/tables/"+id+"/page", map[string]string{"action": action}, &view)
	return &view, err
}

func (c *Client) ChangePageSize(id string, size int) (*TableView, error) {
	var view TableView
	err := c.do(http.MethodPost, "/v1/tables/"+id+"/page-size", map[string]int{"page_size": size}, &view)
	return &view, err
}

func (c *Client) MoveColumn(id string, index int, direction string) (*TableView, error) {
	var view TableView
	path := fmt.Sprintf("/v1/tables/%s/columns/%d/move", id, index)
	err := c.do(http.MethodPost, path, map[string]string{"direction": direction}, &view)
	return &view, err
}

func (c *Client) SetColumnVisibility(id string, index int, visible bool) (*TableView, error) {
	var view TableView
	path := fmt.Sprintf("/v1/tables/%s/columns/%d/visibility", id, index)
	err := c.do(http.MethodPost, path, map[string]bool{"visible": visible}, &view)
	return &view, err
}

func (c *Client) ListTemplates(aspect string) ([]Template, error) {
	path := "/v1/templates"
	if aspect != "" {
		path += "?aspect=" + aspect
	}
	var body struct {
		Templates []Template `json:"templates"`
	}
	err := c.do(http.MethodGet, path, nil, &body)
	return body.Templates, err
}

func (c *Client) GetTemplate(name string) (*Template, error) {
	var tmpl Template
	err := c.do(http.MethodGet, "/v1/templates/"+name, nil, &tmpl)
	return &tmpl, err
}

func (c *Client) RunTemplate(name string) (*TableView, error) {
	var view TableView
	err := c.do(http.MethodPost, "/v1/templates/"+name+"/run", nil, &view)
	return &view, err
}

func (c *Client) BeginPage() ([]AspectSummary, error) {
	var body struct {
		Aspects []AspectSummary `json:"aspects"`
	}
	err := c.do(http.MethodGet, "/v1/begin", nil, &body)
	return body.Aspects, err
}

func (c *Client) History() ([]HistoryEntry, error) {
	var body struct {
		Entries []HistoryEntry `json:"entries"`
	}
	err := c.do(http.MethodGet, "/v1/history", nil, &body)
	return body.Entries, err
}

// Export downloads an export and returns the raw bytes. An empty export
// comes back as a JSON notice instead of file content; the notice message is
// returned in that case.
func (c *Client) Export(id, format string, extraQuery string) ([]byte, string, error) {
	path := "/v1/tables/" + id + "/export?format=" + format
	if extraQuery != "" {
		path += "&" + extraQuery
	}

	resp, err := c.HTTP.Get(c.BaseURL + path)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", apiErrorFromBody(resp.StatusCode, data)
	}
	if resp.Header.Get("Content-Disposition") == "" {
		var notice struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(data, &notice)
		return nil, notice.Message, nil
	}
	return data, "", nil
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiErrorFromBody(resp.StatusCode, data)
	}
	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}

func apiErrorFromBody(status int, data []byte) *APIError {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(data, &body)
	if body.Message == "" {
		body.Message = http.StatusText(status)
	}
	return &APIError{HTTPStatus: status, Message: body.Message}
}
