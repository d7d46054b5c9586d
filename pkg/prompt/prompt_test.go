package prompt_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/arya-analytics/enroll/pkg/prompt"
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var ctx = context.Background()

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

var _ = Describe("Terminal", func() {
	var out *bytes.Buffer
	BeforeEach(func() { out = &bytes.Buffer{} })

	Describe("Line", func() {
		It("Should print the label and read lines in order", func() {
			t := prompt.NewTerminal(strings.NewReader("a@b.com\nalice\n"), out)
			email, err := t.Line(ctx, "Please input email: ")
			Expect(err).ToNot(HaveOccurred())
			Expect(email).To(Equal("a@b.com"))
			username, err := t.Line(ctx, "Please input username: ")
			Expect(err).ToNot(HaveOccurred())
			Expect(username).To(Equal("alice"))
			Expect(out.String()).To(Equal("Please input email: \nPlease input username: \n"))
		})
		It("Should trim trailing whitespace only", func() {
			t := prompt.NewTerminal(strings.NewReader("  alice \t\r\n"), out)
			v, err := t.Line(ctx, "username")
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal("  alice"))
		})
		It("Should accept a final line without a newline", func() {
			t := prompt.NewTerminal(strings.NewReader("123456"), out)
			v, err := t.Line(ctx, "code")
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal("123456"))
		})
		It("Should return an input error at end of input", func() {
			t := prompt.NewTerminal(strings.NewReader(""), out)
			_, err := t.Line(ctx, "code")
			Expect(errors.Is(err, prompt.InputFailed)).To(BeTrue())
		})
		It("Should return an input error if the label can't be written", func() {
			t := prompt.NewTerminal(strings.NewReader("x\n"), failingWriter{})
			_, err := t.Line(ctx, "code")
			Expect(errors.Is(err, prompt.InputFailed)).To(BeTrue())
		})

		Context("Cancellation", func() {
			var (
				r *io.PipeReader
				w *io.PipeWriter
				t *prompt.Terminal
			)
			BeforeEach(func() {
				r, w = io.Pipe()
				DeferCleanup(func() { _ = r.Close() })
				t = prompt.NewTerminal(r, out)
			})
			It("Should return when the context is cancelled while waiting for input", func() {
				cctx, cancel := context.WithCancel(ctx)
				errs := make(chan error, 1)
				go func() {
					_, err := t.Line(cctx, "Please input verification code (check email): ")
					errs <- err
				}()
				Consistently(errs, 50*time.Millisecond).ShouldNot(Receive())
				cancel()
				var err error
				Eventually(errs, time.Second).Should(Receive(&err))
				Expect(errors.Is(err, context.Canceled)).To(BeTrue())
				Expect(errors.Is(err, prompt.InputFailed)).To(BeTrue())
			})
			It("Should hand a line read after cancellation to the next prompt", func() {
				cctx, cancel := context.WithCancel(ctx)
				cancel()
				_, err := t.Line(cctx, "username")
				Expect(errors.Is(err, context.Canceled)).To(BeTrue())
				go func() { _, _ = io.WriteString(w, "alice\n") }()
				v, err := t.Line(ctx, "username")
				Expect(err).ToNot(HaveOccurred())
				Expect(v).To(Equal("alice"))
			})
		})
	})

	Describe("Secret", func() {
		It("Should read a line when the input isn't a terminal", func() {
			t := prompt.NewTerminal(strings.NewReader("alice\nSecr3t!\n"), out)
			_, err := t.Line(ctx, "username")
			Expect(err).ToNot(HaveOccurred())
			v, err := t.Secret(ctx, "password")
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal("Secr3t!"))
			Expect(out.String()).ToNot(ContainSubstring("Secr3t!"))
		})
		It("Should return when the context is cancelled while waiting for input", func() {
			r, _ := io.Pipe()
			DeferCleanup(func() { _ = r.Close() })
			t := prompt.NewTerminal(r, out)
			cctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
			defer cancel()
			_, err := t.Secret(cctx, "password")
			Expect(errors.Is(err, context.DeadlineExceeded)).To(BeTrue())
			Expect(errors.Is(err, prompt.InputFailed)).To(BeTrue())
		})
	})
})
