package apiclient

import (
	"fmt"
	"net/http"

	"github.com/traden-dev/traden/shared/api"
	"github.com/traden-dev/traden/shared/domain"
	"github.com/traden-dev/traden/shared/utils"
)

func (c *APIClient) CreateReply(threadId domain.ThreadId, content string) (domain.ReplyId, error) {
	resp, err := c.do("POST", fmt.Sprintf("/api/threads/%d/replies", threadId), api.CreateReplyRequest{Content: content})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errorFromResponse(resp)
	}

	var created api.IdResponse
	if err := utils.Decode(resp.Body, &created); err != nil {
		return 0, fmt.Errorf("cannot decode created reply: %w", err)
	}
	return created.Id, nil
}

func (c *APIClient) UpdateReply(id domain.ReplyId, content string) error {
	resp, err := c.do("PUT", fmt.Sprintf("/api/replies/%d", id), api.UpdateReplyRequest{Content: content})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorFromResponse(resp)
	}
	return nil
}

func (c *APIClient) DeleteReply(id domain.ReplyId) error {
	resp, err := c.do("DELETE", fmt.Sprintf("/api/replies/%d", id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorFromResponse(resp)
	}
	return nil
}
