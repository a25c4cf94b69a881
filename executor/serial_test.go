package executor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/compute-tools/vm-restore-points/executor"
	"github.com/compute-tools/vm-restore-points/orchestrator"
	"github.com/compute-tools/vm-restore-points/orchestrator/fakes"
)

var _ = Describe("SerialExecutor", func() {
	var serialExecutor executor.SerialExecutor

	BeforeEach(func() {
		serialExecutor = executor.NewSerialExecutor()
	})

	It("runs every executable in order when nothing fails", func() {
		first := new(fakes.FakeExecutable)
		second := new(fakes.FakeExecutable)
		third := new(fakes.FakeExecutable)

		errs := serialExecutor.Run([][]orchestrator.Executable{{first, second}, {third}})

		Expect(errs).To(BeEmpty())
		Expect(first.ExecuteCallCount()).To(Equal(1))
		Expect(second.ExecuteCallCount()).To(Equal(1))
		Expect(third.ExecuteCallCount()).To(Equal(1))
	})

	It("stops at the first failure and never runs what follows", func() {
		first := new(fakes.FakeExecutable)
		second := new(fakes.FakeExecutable)
		third := new(fakes.FakeExecutable)
		second.ExecuteReturns(errors.New("boom"))

		errs := serialExecutor.Run([][]orchestrator.Executable{{first}, {second}, {third}})

		Expect(errs).To(HaveLen(1))
		Expect(errs[0]).To(MatchError("boom"))
		Expect(first.ExecuteCallCount()).To(Equal(1))
		Expect(second.ExecuteCallCount()).To(Equal(1))
		Expect(third.ExecuteCallCount()).To(BeZero())
	})

	It("returns no errors for an empty batch list", func() {
		Expect(serialExecutor.Run(nil)).To(BeEmpty())
	})
})
