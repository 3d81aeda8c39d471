package discovery

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleInfo() *BridgeInfo {
	return &BridgeInfo{
		TransportVersion: 2,
		Product:          1,
		Release:          "1.0.0",
		StackID:          3,
		Capabilities:     0x0043,
		ID:               "00124b0001020304",
	}
}

func TestBridgeTXTRoundtrip(t *testing.T) {
	info := sampleInfo()
	info.Name = "lab bridge"

	txt := EncodeBridgeTXT(info)
	if txt[TXTKeyCapabilities] != "0043" {
		t.Errorf("caps = %q, want 0043", txt[TXTKeyCapabilities])
	}

	decoded, err := DecodeBridgeTXT(txt)
	if err != nil {
		t.Fatalf("DecodeBridgeTXT failed: %v", err)
	}
	if *decoded != *info {
		t.Errorf("got %+v, want %+v", decoded, info)
	}
}

func TestBridgeTXTOptionalFields(t *testing.T) {
	info := sampleInfo()
	info.ID = ""

	txt := EncodeBridgeTXT(info)
	if _, ok := txt[TXTKeyID]; ok {
		t.Error("id should be omitted when empty")
	}
	if _, ok := txt[TXTKeyName]; ok {
		t.Error("name should be omitted when empty")
	}
	if _, err := DecodeBridgeTXT(txt); err != nil {
		t.Errorf("decode without optional fields: %v", err)
	}
}

func TestDecodeBridgeTXTErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(TXTRecordMap)
		want   error
	}{
		{"missing transport", func(m TXTRecordMap) { delete(m, TXTKeyTransport) }, ErrMissingRequired},
		{"missing product", func(m TXTRecordMap) { delete(m, TXTKeyProduct) }, ErrMissingRequired},
		{"missing release", func(m TXTRecordMap) { delete(m, TXTKeyRelease) }, ErrMissingRequired},
		{"missing stack", func(m TXTRecordMap) { delete(m, TXTKeyStackID) }, ErrMissingRequired},
		{"missing caps", func(m TXTRecordMap) { delete(m, TXTKeyCapabilities) }, ErrMissingRequired},
		{"transport not a number", func(m TXTRecordMap) { m[TXTKeyTransport] = "two" }, ErrInvalidTXTRecord},
		{"product overflow", func(m TXTRecordMap) { m[TXTKeyProduct] = "256" }, ErrInvalidTXTRecord},
		{"stack above 7", func(m TXTRecordMap) { m[TXTKeyStackID] = "8" }, ErrInvalidTXTRecord},
		{"caps not hex", func(m TXTRecordMap) { m[TXTKeyCapabilities] = "zz" }, ErrInvalidTXTRecord},
		{"caps too wide", func(m TXTRecordMap) { m[TXTKeyCapabilities] = "10000" }, ErrInvalidTXTRecord},
		{"short id", func(m TXTRecordMap) { m[TXTKeyID] = "0012" }, ErrInvalidTXTRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := EncodeBridgeTXT(sampleInfo())
			tt.mutate(txt)
			if _, err := DecodeBridgeTXT(txt); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTXTRecordsToStringsSorted(t *testing.T) {
	strs := TXTRecordsToStrings(TXTRecordMap{"pv": "1", "caps": "0043", "tv": "2"})
	want := []string{"caps=0043", "pv=1", "tv=2"}
	if strings.Join(strs, " ") != strings.Join(want, " ") {
		t.Errorf("got %v, want %v", strs, want)
	}
	if TXTRecordSize(strs) != 10+5+5 {
		t.Errorf("TXTRecordSize = %d", TXTRecordSize(strs))
	}
}

func TestStringsToTXTRecords(t *testing.T) {
	txt := StringsToTXTRecords([]string{"a=1", "b=x=y", "flag", ""})
	if txt["a"] != "1" || txt["b"] != "x=y" {
		t.Errorf("got %v", txt)
	}
	if v, ok := txt["flag"]; !ok || v != "" {
		t.Errorf("flag: %q, %v", v, ok)
	}
	if len(txt) != 3 {
		t.Errorf("len = %d, want 3", len(txt))
	}
}

func TestInstanceName(t *testing.T) {
	info := sampleInfo()
	if got := InstanceName(info); got != "MT-01020304" {
		t.Errorf("got %q", got)
	}

	info.ID = ""
	if got := InstanceName(info); got != "MT-bridge-3" {
		t.Errorf("got %q", got)
	}

	info.Name = "kitchen"
	if got := InstanceName(info); got != "kitchen" {
		t.Errorf("got %q", got)
	}
}

func TestValidateInstanceName(t *testing.T) {
	if err := ValidateInstanceName("MT-01020304"); err != nil {
		t.Errorf("valid name rejected: %v", err)
	}
	if err := ValidateInstanceName(""); !errors.Is(err, ErrInstanceNameTooLong) {
		t.Errorf("empty: %v", err)
	}
	if err := ValidateInstanceName(strings.Repeat("x", MaxInstanceNameLen+1)); !errors.Is(err, ErrInstanceNameTooLong) {
		t.Errorf("long: %v", err)
	}
}

func TestServiceEntryToBridgeService(t *testing.T) {
	entry := ServiceEntry{
		Instance: "MT-01020304",
		Service:  ServiceType,
		Domain:   Domain,
		Host:     "bridge.local",
		Port:     2560,
		Text:     TXTRecordsToStrings(EncodeBridgeTXT(sampleInfo())),
		Addrs:    []string{"192.168.1.20", "fe80::1"},
	}

	svc, err := entry.ToBridgeService()
	if err != nil {
		t.Fatalf("ToBridgeService: %v", err)
	}
	if svc.InstanceName != entry.Instance || svc.Host != entry.Host || svc.Port != 2560 {
		t.Errorf("service = %+v", svc)
	}
	if svc.Capabilities != 0x0043 || svc.StackID != 3 {
		t.Errorf("info = %+v", svc.BridgeInfo)
	}

	addr, err := svc.Address()
	if err != nil || addr != "192.168.1.20:2560" {
		t.Errorf("Address = %q, %v", addr, err)
	}

	entry.Text = []string{"tv=2"}
	if _, err := entry.ToBridgeService(); err == nil {
		t.Error("expected error for incomplete TXT")
	}
}

func TestBridgeServiceAddressIPv6(t *testing.T) {
	svc := &BridgeService{Port: 2560, Addresses: []string{"fe80::1"}}
	addr, err := svc.Address()
	if err != nil || addr != "[fe80::1]:2560" {
		t.Errorf("Address = %q, %v", addr, err)
	}

	if _, err := (&BridgeService{}).Address(); !errors.Is(err, ErrNotFound) {
		t.Errorf("no addresses: %v", err)
	}
}

func TestFilters(t *testing.T) {
	svc := &BridgeService{BridgeInfo: *sampleInfo()}

	tests := []struct {
		name   string
		filter FilterFunc
		want   bool
	}{
		{"caps subset", FilterByCapabilities(0x0003), true},
		{"caps missing util", FilterByCapabilities(0x0040 | 0x0100), false},
		{"stack", FilterByStackID(3), true},
		{"other stack", FilterByStackID(0), false},
		{"transport", FilterByTransport(2), true},
		{"all pass", All(FilterByStackID(3), nil, FilterByTransport(2)), true},
		{"all one fails", All(FilterByStackID(3), FilterByTransport(1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter(svc); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterBrowseResults(t *testing.T) {
	in := make(chan *BridgeService, 3)
	in <- &BridgeService{InstanceName: "a", BridgeInfo: BridgeInfo{StackID: 0}}
	in <- &BridgeService{InstanceName: "b", BridgeInfo: BridgeInfo{StackID: 1}}
	in <- &BridgeService{InstanceName: "c", BridgeInfo: BridgeInfo{StackID: 1}}
	close(in)

	var names []string
	for svc := range FilterBrowseResults(in, FilterByStackID(1)) {
		names = append(names, svc.InstanceName)
	}
	if strings.Join(names, ",") != "b,c" {
		t.Errorf("got %v", names)
	}
}

func TestFirstMatch(t *testing.T) {
	in := make(chan *BridgeService, 2)
	in <- &BridgeService{InstanceName: "a"}
	in <- &BridgeService{InstanceName: "b", BridgeInfo: BridgeInfo{StackID: 2}}

	svc, err := firstMatch(context.Background(), in, FilterByStackID(2))
	if err != nil || svc.InstanceName != "b" {
		t.Errorf("got %v, %v", svc, err)
	}

	close(in)
	if _, err := firstMatch(context.Background(), in, nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("closed channel: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := firstMatch(ctx, make(chan *BridgeService), nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("timeout: %v", err)
	}
}

func TestAddressAggregation(t *testing.T) {
	addrs := mergeAddresses([]string{"10.0.0.1"}, []string{"10.0.0.1", "fe80::1"})
	if strings.Join(addrs, ",") != "10.0.0.1,fe80::1" {
		t.Errorf("merge: %v", addrs)
	}
	addrs = removeAddresses(addrs, []string{"10.0.0.1"})
	if strings.Join(addrs, ",") != "fe80::1" {
		t.Errorf("remove: %v", addrs)
	}
}

func TestAdvertiserUpdateBeforeAdvertise(t *testing.T) {
	a, err := NewMDNSAdvertiser(DefaultAdvertiserConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Update(sampleInfo()); !errors.Is(err, ErrNotAdvertising) {
		t.Errorf("got %v, want ErrNotAdvertising", err)
	}
	if err := a.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
}

func TestAdvertiserRejectsOversizedTXT(t *testing.T) {
	a, _ := NewMDNSAdvertiser(DefaultAdvertiserConfig())
	info := sampleInfo()
	info.Name = strings.Repeat("n", MaxTXTRecordSize)
	if err := a.Advertise(context.Background(), info); !errors.Is(err, ErrTXTRecordTooLarge) {
		t.Errorf("got %v", err)
	}
}

func TestNewMDNSAdvertiserUnknownInterface(t *testing.T) {
	if _, err := NewMDNSAdvertiser(AdvertiserConfig{Interface: "does-not-exist0"}); err == nil {
		t.Error("expected error for unknown interface")
	}
}
