package password_test

import (
	"fmt"

	"github.com/arya-analytics/enroll/pkg/sec/password"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Raw", func() {
	const secret = "Secr3t!"
	pwd := password.Raw(secret)

	It("Should reveal the plaintext", func() {
		Expect(pwd.Reveal()).To(Equal(secret))
		Expect(pwd.Empty()).To(BeFalse())
		Expect(password.Raw("").Empty()).To(BeTrue())
	})

	DescribeTable("Should never format the plaintext",
		func(format string) {
			Expect(fmt.Sprintf(format, pwd)).ToNot(ContainSubstring(secret))
		},
		Entry("%s", "%s"),
		Entry("%v", "%v"),
		Entry("%+v", "%+v"),
		Entry("%#v", "%#v"),
		Entry("%q", "%q"),
	)

	It("Should redact the plaintext in error messages", func() {
		err := errors.Newf("bad password %s", pwd)
		Expect(err.Error()).ToNot(ContainSubstring(secret))
		Expect(string(redact.Sprint(err).Redact())).ToNot(ContainSubstring(secret))
	})

	It("Should redact the plaintext in structured logs", func() {
		core, logs := observer.New(zapcore.DebugLevel)
		zap.New(core).Info("registered", zap.Stringer("password", pwd))
		Expect(logs.Len()).To(Equal(1))
		Expect(logs.All()[0].ContextMap()["password"]).ToNot(ContainSubstring(secret))
	})
})
