package enroll_test

import (
	"bytes"

	"github.com/arya-analytics/enroll/pkg/enroll"
	"github.com/arya-analytics/enroll/pkg/identity"
	"github.com/arya-analytics/enroll/pkg/prompt"
	"github.com/arya-analytics/enroll/pkg/sec/password"
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Register", func() {
	var (
		svc *fakeService
		p   *scriptedPrompter
		out *bytes.Buffer
		e   *enroll.Enroller
	)
	BeforeEach(func() {
		svc = &fakeService{}
		p = &scriptedPrompter{answers: []string{"a@b.com", "alice", "Secr3t!"}}
		out = &bytes.Buffer{}
		var err error
		e, err = enroll.New(enroll.Config{
			ClientID: "client",
			Identity: svc,
			Prompter: p,
			Out:      out,
		})
		Expect(err).ToNot(HaveOccurred())
	})

	It("Should return the submitted username and password", func() {
		creds, _, err := e.Register(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(creds.Username).To(Equal("alice"))
		Expect(creds.Password).To(Equal(password.Raw("Secr3t!")))
		Expect(creds.AuthParameters()).To(Equal(map[string]string{
			identity.UsernameKey: "alice",
			identity.PasswordKey: "Secr3t!",
		}))
	})

	It("Should prompt for email, username, and password in order", func() {
		_, _, err := e.Register(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(p.labels).To(HaveLen(3))
		Expect(p.labels[0]).To(ContainSubstring("email"))
		Expect(p.labels[1]).To(ContainSubstring("username"))
		Expect(p.labels[2]).To(ContainSubstring("password"))
	})

	It("Should read the password without echo", func() {
		_, _, err := e.Register(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(p.secrets).To(HaveLen(1))
		Expect(p.secrets[0]).To(ContainSubstring("password"))
	})

	It("Should attach the email as a user attribute", func() {
		_, _, err := e.Register(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(svc.signUps).To(HaveLen(1))
		req := svc.signUps[0]
		Expect(req.ClientID).To(Equal("client"))
		Expect(req.Credentials.Username).To(Equal("alice"))
		Expect(req.Attributes).To(ConsistOf(identity.Attribute{
			Name:  identity.EmailAttribute,
			Value: "a@b.com",
		}))
	})

	It("Should report success and where the code was sent", func() {
		svc.signUpResult = identity.SignUpResult{
			UserSub:  "sub",
			Delivery: identity.Delivery{Destination: "a***@b.com", Medium: "EMAIL"},
		}
		_, res, err := e.Register(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(res.UserSub).To(Equal("sub"))
		Expect(out.String()).To(ContainSubstring("Signup successful!"))
		Expect(out.String()).To(ContainSubstring("a***@b.com"))
	})

	It("Should never print the password", func() {
		_, _, err := e.Register(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(out.String()).ToNot(ContainSubstring("Secr3t!"))
	})

	Context("Remote rejection", func() {
		It("Should return a registration error", func() {
			svc.signUpErr = errors.Mark(errors.New("taken"), identity.UsernameExists)
			creds, _, err := e.Register(ctx)
			Expect(errors.Is(err, enroll.RegistrationFailed)).To(BeTrue())
			Expect(errors.Is(err, identity.UsernameExists)).To(BeTrue())
			Expect(creds).To(Equal(identity.Credentials{}))
			Expect(out.String()).ToNot(ContainSubstring("Signup successful!"))
		})
		It("Should print the rejection", func() {
			svc.signUpErr = errors.Mark(errors.New("taken"), identity.UsernameExists)
			_, _, err := e.Register(ctx)
			Expect(err).To(HaveOccurred())
			Expect(out.String()).To(ContainSubstring("Registration error: taken"))
			Expect(out.String()).ToNot(ContainSubstring("Secr3t!"))
		})
	})

	Context("Input failure", func() {
		It("Should return an input error without calling the service", func() {
			p.answers = []string{"a@b.com"}
			_, _, err := e.Register(ctx)
			Expect(errors.Is(err, prompt.InputFailed)).To(BeTrue())
			Expect(errors.Is(err, enroll.RegistrationFailed)).To(BeTrue())
			Expect(svc.signUps).To(BeEmpty())
		})
	})
})
