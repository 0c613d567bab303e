package user

import (
	"context"
	"log/slog"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/rspur/sampleportal/internal"
	"github.com/rspur/sampleportal/internal/access"
	"github.com/rspur/sampleportal/internal/core/events"
	"github.com/rspur/sampleportal/internal/registry"
)

var _ = ginkgo.Describe("UserService", func() {
	var (
		service   *Service
		directory *InMemoryDirectory
	)

	ginkgo.BeforeEach(func() {
		var err error
		directory, err = SeedSampleUsers(bcrypt.MinCost)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		bus := events.NewEventBus(slog.Default())
		service = NewService(directory, bus, slog.Default(), bcrypt.MinCost)
	})

	actor := func(id string) *User {
		u, err := directory.FindByID(id)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		return u
	}

	ginkgo.Describe("Create", func() {
		ginkgo.It("should provision a user with the role-derived default map", func() {
			created, err := service.Create(context.Background(), CreateUserDTO{
				Name:     "New Member",
				Email:    "member@rspur.com",
				Password: "a-strong-one",
				Role:     "MEMBER",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.Role).To(gomega.Equal(access.RoleMember))
			gomega.Expect(created.ModuleAccess).To(gomega.HaveLen(len(registry.Registry)))
			gomega.Expect(created.ModuleAccess[registry.KeyHealthTracker]).To(gomega.Equal(access.LevelNone))
		})

		ginkgo.It("should reject an unknown role", func() {
			_, err := service.Create(context.Background(), CreateUserDTO{
				Name:     "X",
				Email:    "x@rspur.com",
				Password: "pw",
				Role:     "OWNER",
			})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeValidationFailed))
		})

		ginkgo.It("should reject a taken email", func() {
			_, err := service.Create(context.Background(), CreateUserDTO{
				Name:     "Dup",
				Email:    "ava@rspur.com",
				Password: "pw",
				Role:     "MEMBER",
			})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUserExists))
		})

		ginkgo.It("should reject missing fields", func() {
			_, err := service.Create(context.Background(), CreateUserDTO{Name: "No Email"})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeValidationFailed))
		})
	})

	ginkgo.Describe("GrantAccess", func() {
		ginkgo.It("should let a SUPER_ADMIN raise a restricted module", func() {
			updated, err := service.GrantAccess(context.Background(), actor("u_jake"), GrantAccessDTO{
				UserID:      "u_ava",
				Module:      "health-tracker",
				AccessLevel: "VIEW",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.ModuleAccess[registry.KeyHealthTracker]).To(gomega.Equal(access.LevelView))
		})

		ginkgo.It("should refuse an ADMIN raising the admin module", func() {
			_, err := service.GrantAccess(context.Background(), actor("u_ian"), GrantAccessDTO{
				UserID:      "u_ava",
				Module:      "admin",
				AccessLevel: "VIEW",
			})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrGrantForbidden))
		})

		ginkgo.It("should let an ADMIN revoke a restricted module", func() {
			updated, err := service.GrantAccess(context.Background(), actor("u_ian"), GrantAccessDTO{
				UserID:      "u_jake",
				Module:      "house-manual",
				AccessLevel: "NONE",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.ModuleAccess[registry.KeyHouseManual]).To(gomega.Equal(access.LevelNone))
		})

		ginkgo.It("should reject an unknown module", func() {
			_, err := service.GrantAccess(context.Background(), actor("u_jake"), GrantAccessDTO{
				UserID:      "u_ava",
				Module:      "payroll",
				AccessLevel: "VIEW",
			})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUnknownModule))
		})

		ginkgo.It("should reject an unknown target user", func() {
			_, err := service.GrantAccess(context.Background(), actor("u_jake"), GrantAccessDTO{
				UserID:      "u_ghost",
				Module:      "dashboard",
				AccessLevel: "VIEW",
			})
			gomega.Expect(err).To(gomega.MatchError(internal.ErrUserNotFound))
		})

		ginkgo.It("should reject an invalid access level", func() {
			_, err := service.GrantAccess(context.Background(), actor("u_jake"), GrantAccessDTO{
				UserID:      "u_ava",
				Module:      "dashboard",
				AccessLevel: "OWNER",
			})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeValidationFailed))
		})
	})
})
