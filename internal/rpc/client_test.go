package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestClient starts a server answering each method with a fixed raw
// result, and returns a client pointed at it.
func newTestClient(t *testing.T, results map[string]string) *Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}

		result, ok := results[req.Method]
		if !ok {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"Method not found"}}`)
			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"result":%s}`, result)
	}))
	t.Cleanup(srv.Close)

	return NewClient("test", srv.URL, 2*time.Second, 0)
}

func TestSubnetInfo(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"subnetInfo_getDynamicInfo": `{
			"netuid": 1,
			"subnet_name": "text-prompting",
			"symbol": "α",
			"tempo": 360,
			"last_step": 4500000,
			"emission": {"tao": 12.5},
			"price": {"tao": 0.02, "rao": 20000000}
		}`,
	})

	info, err := client.SubnetInfo(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.NetUID != 1 || *info.SubnetName != "text-prompting" || *info.Tempo != 360 {
		t.Errorf("unexpected descriptor: %+v", info)
	}
	if info.Price == nil || info.Price.Tao != 0.02 {
		t.Errorf("price = %+v, want tao 0.02", info.Price)
	}

	// Emission stays loosely typed for the coercion layer.
	m, ok := info.Emission.(map[string]any)
	if !ok || m["tao"] != 12.5 {
		t.Errorf("emission = %#v, want map with tao 12.5", info.Emission)
	}
}

func TestSubnetInfoNullResult(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"subnetInfo_getDynamicInfo": `null`,
	})

	if _, err := client.SubnetInfo(context.Background(), 99); err == nil {
		t.Error("SubnetInfo() succeeded on null result, want error")
	}
}

func TestAllSubnets(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"subnetInfo_getAllDynamicInfo": `[{"netuid":0},{"netuid":1},{"netuid":4}]`,
	})

	infos, err := client.AllSubnets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(infos) != 3 || infos[2].NetUID != 4 {
		t.Errorf("unexpected listing: %+v", infos)
	}
}

func TestTotalSubnets(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"subnetInfo_getTotalSubnets": `42`,
	})

	total, err := client.TotalSubnets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 42 {
		t.Errorf("total = %d, want 42", total)
	}
}

func TestMetagraph(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"subnetInfo_getMetagraph": `{
			"netuid": 1,
			"n": 256,
			"tempo": 360,
			"validator_permit": [true, false, true],
			"stake": [100.0, 0.0, 55.5],
			"emission": "1.25"
		}`,
	})

	mg, err := client.Metagraph(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *mg.N != 256 || len(mg.ValidatorPermit) != 3 || mg.Tempo != 360 {
		t.Errorf("unexpected metagraph: %+v", mg)
	}
	if mg.Emission != "1.25" {
		t.Errorf("emission = %#v, want string form preserved", mg.Emission)
	}
}

func TestCallRPCError(t *testing.T) {
	client := newTestClient(t, nil)

	if _, err := client.Call(context.Background(), "subnetInfo_getDynamicInfo", 0); err == nil {
		t.Error("Call() succeeded, want RPC error")
	}
}

func TestDiagnosticsOmitAbsentFields(t *testing.T) {
	name := "root"
	info := &SubnetInfo{NetUID: 0, SubnetName: &name}

	d := info.Diagnostics()
	if d["dynamic_info.subnet_name"] != "root" {
		t.Errorf("diagnostics = %v", d)
	}
	if _, ok := d["dynamic_info.symbol"]; ok {
		t.Error("absent symbol reported in diagnostics")
	}

	mg := &Metagraph{NetUID: 0, Hotkeys: []string{"a", "b"}}
	dm := mg.Diagnostics()
	if dm["metagraph.hotkeys"] != "len=2" {
		t.Errorf("diagnostics = %v", dm)
	}
	if _, ok := dm["metagraph.n"]; ok {
		t.Error("absent n reported in diagnostics")
	}
}
