package orchestrator_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/compute-tools/vm-restore-points/orchestrator"
)

var _ = Describe("Error", func() {
	Describe("IsNil", func() {
		It("treats an empty aggregate as nil", func() {
			Expect(orchestrator.Error{}.IsNil()).To(BeTrue())
			Expect(orchestrator.Error{errors.New("boom")}.IsNil()).To(BeFalse())
		})
	})

	Describe("ContainsMutationFailure", func() {
		It("detects a mutation error anywhere in the aggregate", func() {
			errs := orchestrator.Error{
				errors.New("unrelated"),
				orchestrator.NewMutationError("start", errors.New("allocation failure")),
			}
			Expect(errs.ContainsMutationFailure()).To(BeTrue())
		})

		It("is false for pre-mutation failures", func() {
			errs := orchestrator.Error{orchestrator.NewDiskCreationError(errors.New("quota"))}
			Expect(errs.ContainsMutationFailure()).To(BeFalse())
		})
	})

	Describe("PrettyError", func() {
		It("numbers each error", func() {
			errs := orchestrator.Error{errors.New("first"), errors.New("second")}
			pretty := errs.PrettyError(false)

			Expect(pretty).To(ContainSubstring("2 errors occurred"))
			Expect(pretty).To(ContainSubstring("error 1:"))
			Expect(pretty).To(ContainSubstring("first"))
			Expect(pretty).To(ContainSubstring("error 2:"))
			Expect(pretty).To(ContainSubstring("second"))
		})
	})

	Describe("BuildExitCode", func() {
		It("maps disk preparation failures to bit 3", func() {
			Expect(orchestrator.BuildExitCode(orchestrator.Error{
				orchestrator.NewTierLookupError("mismatch"),
			})).To(Equal(1 << 3))
			Expect(orchestrator.BuildExitCode(orchestrator.Error{
				orchestrator.NewDiskCreationError(errors.New("quota")),
			})).To(Equal(1 << 3))
		})

		It("maps mutation failures to bit 4", func() {
			Expect(orchestrator.BuildExitCode(orchestrator.Error{
				orchestrator.NewMutationError("swap-os-disk", errors.New("conflict")),
			})).To(Equal(1 << 4))
		})

		It("maps anything else to 1", func() {
			Expect(orchestrator.BuildExitCode(orchestrator.Error{errors.New("boom")})).To(Equal(1))
		})

		It("combines codes for mixed aggregates", func() {
			code := orchestrator.BuildExitCode(orchestrator.Error{
				orchestrator.NewDiskCreationError(errors.New("quota")),
				orchestrator.NewMutationError("start", errors.New("conflict")),
			})
			Expect(code).To(Equal(1<<3 | 1<<4))
		})
	})

	Describe("ProcessError", func() {
		It("returns zero values for a clean run", func() {
			code, message, stackTrace := orchestrator.ProcessError(nil)
			Expect(code).To(BeZero())
			Expect(message).To(BeEmpty())
			Expect(stackTrace).To(BeEmpty())
		})

		It("renders the message and stack trace for failures", func() {
			code, message, stackTrace := orchestrator.ProcessError(orchestrator.Error{errors.New("boom")})
			Expect(code).To(Equal(1))
			Expect(message).To(ContainSubstring("boom"))
			Expect(stackTrace).To(ContainSubstring("boom"))
		})
	})
})
