package apiclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/traden-dev/traden/shared/api"
	"github.com/traden-dev/traden/shared/domain"
	"github.com/traden-dev/traden/shared/utils"
)

func (c *APIClient) ListThreads(sortBy, category, search string) ([]domain.Thread, error) {
	params := url.Values{}
	if sortBy != "" {
		params.Set("sortBy", sortBy)
	}
	if category != "" {
		params.Set("category", category)
	}
	if search != "" {
		params.Set("search", search)
	}
	path := "/api/threads"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := c.do("GET", path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorFromResponse(resp)
	}

	var threads []domain.Thread
	if err := utils.Decode(resp.Body, &threads); err != nil {
		return nil, fmt.Errorf("cannot decode thread list response: %w", err)
	}
	return threads, nil
}

func (c *APIClient) GetThread(id domain.ThreadId) (domain.ThreadWithReplies, error) {
	var thread domain.ThreadWithReplies
	resp, err := c.do("GET", fmt.Sprintf("/api/threads/%d", id), nil)
	if err != nil {
		return thread, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return thread, errorFromResponse(resp)
	}

	if err := utils.Decode(resp.Body, &thread); err != nil {
		return thread, fmt.Errorf("cannot decode thread response: %w", err)
	}
	return thread, nil
}

func (c *APIClient) CreateThread(data api.CreateThreadRequest) (domain.Thread, error) {
	var thread domain.Thread
	resp, err := c.do("POST", "/api/threads", data)
	if err != nil {
		return thread, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return thread, errorFromResponse(resp)
	}

	if err := utils.Decode(resp.Body, &thread); err != nil {
		return thread, fmt.Errorf("cannot decode created thread: %w", err)
	}
	return thread, nil
}

func (c *APIClient) UpdateThread(id domain.ThreadId, data api.UpdateThreadRequest) error {
	resp, err := c.do("PUT", fmt.Sprintf("/api/threads/%d", id), data)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorFromResponse(resp)
	}
	return nil
}

func (c *APIClient) DeleteThread(id domain.ThreadId) error {
	resp, err := c.do("DELETE", fmt.Sprintf("/api/threads/%d", id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorFromResponse(resp)
	}
	return nil
}
