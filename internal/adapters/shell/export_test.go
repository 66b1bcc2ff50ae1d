// export_test.go exports private types for white-box testing.
package shell

import (
	"io"

	"github.com/humotica/kit/internal/core/ports"
)

// NewLogWriter exports the private logWriter for testing.
func NewLogWriter(logger ports.Logger, level string) io.Writer {
	return &logWriter{logger: logger, level: level}
}
