package user

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/rspur/sampleportal/internal/access"
	"github.com/rspur/sampleportal/internal/registry"
)

var _ = ginkgo.Describe("InMemoryDirectory", func() {
	var directory *InMemoryDirectory

	ginkgo.BeforeEach(func() {
		var err error
		directory, err = SeedSampleUsers(bcrypt.MinCost)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
	})

	ginkgo.Describe("SeedSampleUsers", func() {
		ginkgo.It("should seed the three demo accounts with role defaults", func() {
			users, err := directory.ListAll()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(users).To(gomega.HaveLen(3))

			jake, err := directory.FindByID("u_jake")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(jake.Role).To(gomega.Equal(access.RoleSuperAdmin))
			gomega.Expect(jake.ModuleAccess[registry.KeyAdmin]).To(gomega.Equal(access.LevelAdmin))

			ava, err := directory.FindByID("u_ava")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(ava.Role).To(gomega.Equal(access.RoleMember))
			gomega.Expect(ava.ModuleAccess[registry.KeyAdmin]).To(gomega.Equal(access.LevelNone))
			gomega.Expect(ava.ModuleAccess[registry.KeyDashboard]).To(gomega.Equal(access.LevelView))
		})

		ginkgo.It("should store bcrypt hashes, never the plaintext password", func() {
			ian, err := directory.FindByID("u_ian")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(ian.PasswordHash).ToNot(gomega.Equal("sample123"))
			gomega.Expect(bcrypt.CompareHashAndPassword([]byte(ian.PasswordHash), []byte("sample123"))).To(gomega.Succeed())
		})
	})

	ginkgo.Describe("FindByEmail", func() {
		ginkgo.It("should match case-insensitively with surrounding whitespace", func() {
			u, err := directory.FindByEmail("  Jake@RSPUR.com ")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(u.ID).To(gomega.Equal("u_jake"))
		})

		ginkgo.It("should return ErrNotFound for unknown emails", func() {
			_, err := directory.FindByEmail("nobody@rspur.com")
			gomega.Expect(err).To(gomega.MatchError(ErrNotFound))
		})
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should assign a prefixed id and append the user", func() {
			created, err := directory.Create("New Person", "new@rspur.com", "hash", access.RoleMember, access.DefaultAccess(access.RoleMember))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.ID).To(gomega.HavePrefix("u_"))

			found, err := directory.FindByEmail("new@rspur.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(found.ID).To(gomega.Equal(created.ID))
		})

		ginkgo.It("should reject a duplicate email regardless of case", func() {
			_, err := directory.Create("Dup", "AVA@rspur.com", "hash", access.RoleMember, access.DefaultAccess(access.RoleMember))
			gomega.Expect(err).To(gomega.MatchError(ErrEmailTaken))
		})
	})

	ginkgo.Describe("SetModuleAccess", func() {
		ginkgo.It("should persist the new level", func() {
			updated, err := directory.SetModuleAccess("u_ava", registry.KeyAssets, access.LevelEdit)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.ModuleAccess[registry.KeyAssets]).To(gomega.Equal(access.LevelEdit))

			reread, err := directory.FindByID("u_ava")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(reread.ModuleAccess[registry.KeyAssets]).To(gomega.Equal(access.LevelEdit))
		})

		ginkgo.It("should return ErrNotFound for an unknown user", func() {
			_, err := directory.SetModuleAccess("u_ghost", registry.KeyAssets, access.LevelView)
			gomega.Expect(err).To(gomega.MatchError(ErrNotFound))
		})
	})

	ginkgo.Describe("Clone semantics", func() {
		ginkgo.It("should never leak the backing access map to callers", func() {
			u, err := directory.FindByID("u_ava")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			u.ModuleAccess[registry.KeyAdmin] = access.LevelAdmin

			reread, err := directory.FindByID("u_ava")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(reread.ModuleAccess[registry.KeyAdmin]).To(gomega.Equal(access.LevelNone))
		})
	})
})
