package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/rspur/sampleportal/internal/access"
	"github.com/rspur/sampleportal/internal/core/events"
	"github.com/rspur/sampleportal/internal/registry"
	"github.com/rspur/sampleportal/internal/user"
)

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service   *Service
		directory *user.InMemoryDirectory
		codec     *Codec
	)

	ginkgo.BeforeEach(func() {
		var err error
		directory, err = user.SeedSampleUsers(bcrypt.MinCost)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		codec = NewCodec("test-secret-test-secret-test-secret!", time.Hour)
		bus := events.NewEventBus(slog.Default())
		service = NewService(codec, directory, bus, slog.Default(), false)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should mint a resolvable token", func() {
				token, u, err := service.Authenticate(context.Background(), LoginDTO{
					Email:    "ava@rspur.com",
					Password: "sample123",
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(token).ToNot(gomega.BeEmpty())
				gomega.Expect(u.Role).To(gomega.Equal(access.RoleMember))

				resolved, err := service.Resolve(token)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(resolved.ID).To(gomega.Equal(u.ID))
			})

			ginkgo.It("should match emails case-insensitively", func() {
				_, u, err := service.Authenticate(context.Background(), LoginDTO{
					Email:    "  AVA@RSPUR.COM ",
					Password: "sample123",
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(u.Email).To(gomega.Equal("ava@rspur.com"))
			})
		})

		ginkgo.Context("when credentials are invalid", func() {
			ginkgo.It("should reject a wrong password", func() {
				_, _, err := service.Authenticate(context.Background(), LoginDTO{
					Email:    "ava@rspur.com",
					Password: "wrong",
				})
				gomega.Expect(err).To(gomega.MatchError(ErrInvalidCredentials))
			})

			ginkgo.It("should reject an unknown email with the same error", func() {
				_, _, err := service.Authenticate(context.Background(), LoginDTO{
					Email:    "nobody@rspur.com",
					Password: "sample123",
				})
				gomega.Expect(err).To(gomega.MatchError(ErrInvalidCredentials))
			})

			ginkgo.It("should reject missing fields with a validation error", func() {
				_, _, err := service.Authenticate(context.Background(), LoginDTO{})
				gomega.Expect(err).To(gomega.BeAssignableToTypeOf(ValidationError{}))
			})
		})
	})

	ginkgo.Describe("Resolve", func() {
		ginkgo.It("should return the fresh directory record, not the token snapshot", func() {
			token, u, err := service.Authenticate(context.Background(), LoginDTO{
				Email:    "ava@rspur.com",
				Password: "sample123",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// Permission change after login takes effect without re-login.
			_, err = directory.SetModuleAccess(u.ID, registry.KeyAssets, access.LevelEdit)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			resolved, err := service.Resolve(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(resolved.ModuleAccess[registry.KeyAssets]).To(gomega.Equal(access.LevelEdit))
		})

		ginkgo.It("should fail with ErrUnknownUser when the directory no longer knows the id", func() {
			token, err := codec.Encode(user.SessionView{
				ID:    "u_ghost",
				Name:  "Ghost",
				Email: "ghost@rspur.com",
				Role:  access.RoleMember,
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Resolve(token)
			gomega.Expect(err).To(gomega.MatchError(ErrUnknownUser))
		})

		ginkgo.It("should propagate codec failures", func() {
			_, err := service.Resolve("garbage")
			gomega.Expect(err).To(gomega.MatchError(ErrMalformedToken))
		})
	})

	ginkgo.Describe("SessionCookie", func() {
		ginkgo.It("should carry the fixed name, ttl and flags", func() {
			cookie := service.SessionCookie("tok")

			gomega.Expect(cookie.Name).To(gomega.Equal(SessionCookieName))
			gomega.Expect(cookie.Value).To(gomega.Equal("tok"))
			gomega.Expect(cookie.Path).To(gomega.Equal("/"))
			gomega.Expect(cookie.MaxAge).To(gomega.Equal(3600))
			gomega.Expect(cookie.HttpOnly).To(gomega.BeTrue())
		})

		ginkgo.It("should clear with an empty value and negative max-age", func() {
			cookie := service.ClearSessionCookie()

			gomega.Expect(cookie.Value).To(gomega.BeEmpty())
			gomega.Expect(cookie.MaxAge).To(gomega.BeNumerically("<", 0))
		})
	})
})
