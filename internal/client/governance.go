package client

import (
	"context"
	"fmt"

	internalhttp "github.com/iofinance-io/iof-client/internal/http"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// GovernanceClient implements iof.GovernanceClient.
type GovernanceClient struct {
	http *internalhttp.Client
}

func (c *GovernanceClient) ListBoards(ctx context.Context, opts *iof.TypeListOptions) (*iof.ListResponse[iof.GovernanceBoard], error) {
	resp, err := c.http.Get(ctx, apiPath("/governance/boards"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing governance boards: %w", err)
	}

	var result iof.ListResponse[iof.GovernanceBoard]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *GovernanceClient) GetBoard(ctx context.Context, boardID string) (*iof.GovernanceBoard, error) {
	resp, err := c.http.Get(ctx, apiPath("/governance/boards/%s", boardID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting governance board %s: %w", boardID, err)
	}

	var board iof.GovernanceBoard
	if err := decodeInto(resp, &board); err != nil {
		return nil, err
	}

	return &board, nil
}

func (c *GovernanceClient) CreateBoard(ctx context.Context, req *iof.CreateGovernanceBoardRequest) (*iof.GovernanceBoard, error) {
	resp, err := c.http.Post(ctx, apiPath("/governance/boards"), req)
	if err != nil {
		return nil, fmt.Errorf("creating governance board: %w", err)
	}

	var board iof.GovernanceBoard
	if err := decodeInto(resp, &board); err != nil {
		return nil, err
	}

	return &board, nil
}

func (c *GovernanceClient) UpdateBoard(ctx context.Context, boardID string, req *iof.UpdateGovernanceBoardRequest) (*iof.GovernanceBoard, error) {
	resp, err := c.http.Patch(ctx, apiPath("/governance/boards/%s", boardID), req)
	if err != nil {
		return nil, fmt.Errorf("updating governance board %s: %w", boardID, err)
	}

	var board iof.GovernanceBoard
	if err := decodeInto(resp, &board); err != nil {
		return nil, err
	}

	return &board, nil
}

func (c *GovernanceClient) ListMembers(ctx context.Context, boardID string) ([]iof.BoardMember, error) {
	resp, err := c.http.Get(ctx, apiPath("/governance/boards/%s/members", boardID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing members of board %s: %w", boardID, err)
	}

	var members []iof.BoardMember
	if err := decodeInto(resp, &members); err != nil {
		return nil, err
	}

	return members, nil
}

func (c *GovernanceClient) AddMember(ctx context.Context, boardID string, req *iof.AddBoardMemberRequest) (*iof.BoardMember, error) {
	resp, err := c.http.Post(ctx, apiPath("/governance/boards/%s/members", boardID), req)
	if err != nil {
		return nil, fmt.Errorf("adding member to board %s: %w", boardID, err)
	}

	var member iof.BoardMember
	if err := decodeInto(resp, &member); err != nil {
		return nil, err
	}

	return &member, nil
}

func (c *GovernanceClient) RemoveMember(ctx context.Context, boardID, memberID string) error {
	if _, err := c.http.Delete(ctx, apiPath("/governance/boards/%s/members/%s", boardID, memberID)); err != nil {
		return fmt.Errorf("removing member %s from board %s: %w", memberID, boardID, err)
	}

	return nil
}

func (c *GovernanceClient) ListMeetings(ctx context.Context, boardID string, opts *iof.ListOptions) (*iof.ListResponse[iof.BoardMeeting], error) {
	resp, err := c.http.Get(ctx, apiPath("/governance/boards/%s/meetings", boardID), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing meetings of board %s: %w", boardID, err)
	}

	var result iof.ListResponse[iof.BoardMeeting]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *GovernanceClient) GetMeeting(ctx context.Context, boardID, meetingID string) (*iof.BoardMeeting, error) {
	resp, err := c.http.Get(ctx, apiPath("/governance/boards/%s/meetings/%s", boardID, meetingID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting meeting %s: %w", meetingID, err)
	}

	var meeting iof.BoardMeeting
	if err := decodeInto(resp, &meeting); err != nil {
		return nil, err
	}

	return &meeting, nil
}

func (c *GovernanceClient) CreateMeeting(ctx context.Context, boardID string, req *iof.CreateBoardMeetingRequest) (*iof.BoardMeeting, error) {
	resp, err := c.http.Post(ctx, apiPath("/governance/boards/%s/meetings", boardID), req)
	if err != nil {
		return nil, fmt.Errorf("scheduling meeting for board %s: %w", boardID, err)
	}

	var meeting iof.BoardMeeting
	if err := decodeInto(resp, &meeting); err != nil {
		return nil, err
	}

	return &meeting, nil
}

func (c *GovernanceClient) ListResolutions(ctx context.Context, boardID string, opts *iof.ListOptions) (*iof.ListResponse[iof.BoardResolution], error) {
	resp, err := c.http.Get(ctx, apiPath("/governance/boards/%s/resolutions", boardID), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing resolutions of board %s: %w", boardID, err)
	}

	var result iof.ListResponse[iof.BoardResolution]
	if err := decodeInto(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *GovernanceClient) CreateResolution(ctx context.Context, boardID string, req *iof.CreateBoardResolutionRequest) (*iof.BoardResolution, error) {
	resp, err := c.http.Post(ctx, apiPath("/governance/boards/%s/resolutions", boardID), req)
	if err != nil {
		return nil, fmt.Errorf("tabling resolution for board %s: %w", boardID, err)
	}

	var resolution iof.BoardResolution
	if err := decodeInto(resp, &resolution); err != nil {
		return nil, err
	}

	return &resolution, nil
}
