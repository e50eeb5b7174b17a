package env

import (
	"strings"

	"go.uber.org/zap"
)

// ListDefault splits a comma separated env var, nil when the value is empty
func ListDefault(log *zap.SugaredLogger, env, def string) []string {
	v := OrDefault(log, env, def)
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
