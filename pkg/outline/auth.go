package outline

import "context"

// AuthInfo returns the user and workspace the API token acts for.
func (c *Client) AuthInfo(ctx context.Context) (*AuthInfo, error) {
	resp, err := c.Execute(ctx, "auth.info", nil)
	if err != nil {
		return nil, err
	}

	var data apiAuthInfo
	if err := decodeLenient(resp.Data, &data); err != nil {
		return nil, c.decodeError("auth.info", err)
	}

	info := reshapeAuthInfo(&data)
	return &info, nil
}
