package utils

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitLoggerTwiceKeepsOnePrefix(t *testing.T) {
	t.Cleanup(func() {
		Logger.SetOutput(os.Stderr)
		Logger.SetLevel(logrus.InfoLevel)
	})

	InitLogger("First", "debug")
	InitLogger("SkillVerify", "info")

	var buf bytes.Buffer
	Logger.SetOutput(&buf)
	Logger.Info("hello")

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "[SkillVerify] hello"), out)
	assert.NotContains(t, out, "[First]")
	assert.NotContains(t, out, "[SkillVerify] [SkillVerify]")
	assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())
}

func TestInitLoggerUnknownLevel(t *testing.T) {
	t.Cleanup(func() {
		Logger.SetOutput(os.Stderr)
		Logger.SetLevel(logrus.InfoLevel)
	})

	InitLogger("SkillVerify", "loud")
	assert.Equal(t, logrus.InfoLevel, Logger.GetLevel())
}
