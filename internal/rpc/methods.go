package rpc

import (
	"context"
	"encoding/json"
	"fmt"
)

// SubnetInfo fetches the rich dynamic descriptor for one subnet.
// A null result means the subnet does not exist on this chain.
func (c *Client) SubnetInfo(ctx context.Context, netuid int) (*SubnetInfo, error) {
	resp, err := c.Call(ctx, "subnetInfo_getDynamicInfo", netuid)
	if err != nil {
		return nil, err
	}

	if len(resp.Result) == 0 || string(resp.Result) == "null" {
		return nil, fmt.Errorf("subnet %d: no dynamic info", netuid)
	}

	var info SubnetInfo
	if err := json.Unmarshal(resp.Result, &info); err != nil {
		return nil, fmt.Errorf("subnet %d: decode dynamic info: %w", netuid, err)
	}

	return &info, nil
}

// AllSubnets fetches the dynamic descriptors for every registered
// subnet in one call, in the chain's enumeration order.
func (c *Client) AllSubnets(ctx context.Context) ([]SubnetInfo, error) {
	resp, err := c.Call(ctx, "subnetInfo_getAllDynamicInfo")
	if err != nil {
		return nil, err
	}

	var infos []SubnetInfo
	if err := json.Unmarshal(resp.Result, &infos); err != nil {
		return nil, fmt.Errorf("decode subnet list: %w", err)
	}

	return infos, nil
}

// TotalSubnets queries the number of registered subnets. Used as the
// enumeration fallback when the bulk listing call is unavailable.
func (c *Client) TotalSubnets(ctx context.Context) (int, error) {
	resp, err := c.Call(ctx, "subnetInfo_getTotalSubnets")
	if err != nil {
		return 0, err
	}

	var total int
	if err := json.Unmarshal(resp.Result, &total); err != nil {
		return 0, fmt.Errorf("decode subnet count: %w", err)
	}
	if total < 0 {
		return 0, fmt.Errorf("negative subnet count: %d", total)
	}

	return total, nil
}

// Metagraph fetches the network snapshot for one subnet.
func (c *Client) Metagraph(ctx context.Context, netuid int) (*Metagraph, error) {
	resp, err := c.Call(ctx, "subnetInfo_getMetagraph", netuid)
	if err != nil {
		return nil, err
	}

	if len(resp.Result) == 0 || string(resp.Result) == "null" {
		return nil, fmt.Errorf("subnet %d: no metagraph", netuid)
	}

	var mg Metagraph
	if err := json.Unmarshal(resp.Result, &mg); err != nil {
		return nil, fmt.Errorf("subnet %d: decode metagraph: %w", netuid, err)
	}

	return &mg, nil
}
