package orchestrator_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/compute-tools/vm-restore-points/orchestrator"
	"github.com/compute-tools/vm-restore-points/orchestrator/fakes"
)

var _ = Describe("Selector", func() {
	var (
		client   *fakes.FakeCloudClient
		logger   *fakes.FakeLogger
		selector *orchestrator.Selector
		request  orchestrator.RestoreRequest

		baseTime time.Time
	)

	BeforeEach(func() {
		client = new(fakes.FakeCloudClient)
		logger = new(fakes.FakeLogger)
		selector = orchestrator.NewSelector(client, logger)
		request = orchestrator.RestoreRequest{
			ResourceGroup: "prod-rg",
			VMName:        "vm1",
		}
		baseTime = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	})

	Context("when both collection and restore point are named", func() {
		BeforeEach(func() {
			request.CollectionName = "rpc1"
			request.RestorePointName = "rp2"
			client.GetRestorePointCollectionReturns(orchestrator.RestorePointCollection{Name: "rpc1"}, nil)
			client.GetRestorePointReturns(orchestrator.RestorePoint{Name: "rp2", TimeCreated: baseTime}, nil)
		})

		It("fetches them directly without listing", func() {
			collection, point, err := selector.Select(context.Background(), request)

			Expect(err).NotTo(HaveOccurred())
			Expect(collection.Name).To(Equal("rpc1"))
			Expect(point.Name).To(Equal("rp2"))
			Expect(client.ListRestorePointCollectionsCallCount()).To(BeZero())

			_, resourceGroup, collectionName, pointName := client.GetRestorePointArgsForCall(0)
			Expect(resourceGroup).To(Equal("prod-rg"))
			Expect(collectionName).To(Equal("rpc1"))
			Expect(pointName).To(Equal("rp2"))
		})
	})

	Context("when the named restore point does not exist", func() {
		BeforeEach(func() {
			request.CollectionName = "rpc1"
			request.RestorePointName = "no-such-point"
			client.GetRestorePointCollectionReturns(orchestrator.RestorePointCollection{Name: "rpc1"}, nil)
			client.GetRestorePointReturns(orchestrator.RestorePoint{}, orchestrator.NewNotFoundError("restore point 'no-such-point' not found"))
		})

		It("fails with the not found error", func() {
			_, _, err := selector.Select(context.Background(), request)

			Expect(err).To(BeAssignableToTypeOf(orchestrator.NotFoundError{}))
			Expect(err).To(MatchError(ContainSubstring("no-such-point")))
		})
	})

	Context("when no collection is named", func() {
		Context("and the resource group has no collections", func() {
			BeforeEach(func() {
				client.ListRestorePointCollectionsReturns(nil, nil)
			})

			It("fails with a no collections error", func() {
				_, _, err := selector.Select(context.Background(), request)

				Expect(err).To(BeAssignableToTypeOf(orchestrator.NoCollectionsFoundError{}))
			})
		})

		Context("and exactly one collection exists", func() {
			BeforeEach(func() {
				client.ListRestorePointCollectionsReturns([]orchestrator.RestorePointCollection{
					{Name: "only"},
				}, nil)
				client.ListRestorePointsReturns([]orchestrator.RestorePoint{
					{Name: "rp1", TimeCreated: baseTime},
				}, nil)
			})

			It("uses it without comparing", func() {
				collection, point, err := selector.Select(context.Background(), request)

				Expect(err).NotTo(HaveOccurred())
				Expect(collection.Name).To(Equal("only"))
				Expect(point.Name).To(Equal("rp1"))
			})
		})

		Context("and several collections exist", func() {
			BeforeEach(func() {
				client.ListRestorePointCollectionsReturns([]orchestrator.RestorePointCollection{
					{Name: "rpc-old"},
					{Name: "rpc-empty"},
					{Name: "rpc-new"},
				}, nil)
				client.ListRestorePointsStub = func(ctx context.Context, resourceGroup, collection string) ([]orchestrator.RestorePoint, error) {
					switch collection {
					case "rpc-old":
						return []orchestrator.RestorePoint{
							{Name: "old-rp", TimeCreated: baseTime.Add(-48 * time.Hour)},
						}, nil
					case "rpc-new":
						return []orchestrator.RestorePoint{
							{Name: "stale-rp", TimeCreated: baseTime.Add(-72 * time.Hour)},
							{Name: "fresh-rp", TimeCreated: baseTime},
						}, nil
					default:
						return nil, nil
					}
				}
			})

			It("picks the collection holding the globally newest restore point", func() {
				collection, point, err := selector.Select(context.Background(), request)

				Expect(err).NotTo(HaveOccurred())
				Expect(collection.Name).To(Equal("rpc-new"))
				Expect(point.Name).To(Equal("fresh-rp"))
			})
		})

		Context("and every collection is empty", func() {
			BeforeEach(func() {
				client.ListRestorePointCollectionsReturns([]orchestrator.RestorePointCollection{
					{Name: "rpc-a"},
					{Name: "rpc-b"},
				}, nil)
				client.ListRestorePointsReturns(nil, nil)
			})

			It("fails with a no restore points error", func() {
				_, _, err := selector.Select(context.Background(), request)

				Expect(err).To(BeAssignableToTypeOf(orchestrator.NoRestorePointsFoundError{}))
			})
		})

		Context("and listing collections fails", func() {
			BeforeEach(func() {
				client.ListRestorePointCollectionsReturns(nil, errors.New("throttled"))
			})

			It("wraps and returns the error", func() {
				_, _, err := selector.Select(context.Background(), request)

				Expect(err).To(MatchError(ContainSubstring("failed to list restore point collections")))
				Expect(err).To(MatchError(ContainSubstring("throttled")))
			})
		})
	})

	Context("when restore points share a creation timestamp", func() {
		BeforeEach(func() {
			request.CollectionName = "rpc1"
			client.GetRestorePointCollectionReturns(orchestrator.RestorePointCollection{Name: "rpc1"}, nil)
			client.ListRestorePointsReturns([]orchestrator.RestorePoint{
				{Name: "rp-zulu", TimeCreated: baseTime},
				{Name: "rp-alpha", TimeCreated: baseTime},
			}, nil)
		})

		It("breaks the tie by the lexicographically smallest name", func() {
			_, point, err := selector.Select(context.Background(), request)

			Expect(err).NotTo(HaveOccurred())
			Expect(point.Name).To(Equal("rp-alpha"))
		})
	})
})
