package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/duosync/internal/flagx"
	"github.com/dmitrijs2005/duosync/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// may be strings like "3s" or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	DebounceInterval    timex.Duration `json:"debounce_interval"`
	SweepInterval       timex.Duration `json:"sweep_interval"`
	MessageTTL          timex.Duration `json:"message_ttl"`
	LogLevel            string         `json:"log_level"`
}

// parseJson overlays Config with the members present in the file named by
// -c or -config. Without either flag nothing happens. Read and unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.DebounceInterval.Duration > 0 {
		cfg.DebounceInterval = jc.DebounceInterval.Duration
	}
	if jc.SweepInterval.Duration > 0 {
		cfg.SweepInterval = jc.SweepInterval.Duration
	}
	if jc.MessageTTL.Duration > 0 {
		cfg.MessageTTL = jc.MessageTTL.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
