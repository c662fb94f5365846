package enrich_test

import (
	"context"
	"testing"
	"time"

	"github.com/okian/blastradius/internal/adapters/repository"
	"github.com/okian/blastradius/internal/domain/enrich"
	"github.com/okian/blastradius/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func fixtureData() model.TrackingData {
	return model.TrackingData{
		LastUpdated: ts("2025-11-02T18:40:00Z"),
		Events: []model.Event{
			{ID: "ev-1", Title: "US-EAST-1 outage", Date: ts("2025-10-20T07:11:00Z")},
		},
		Services: []model.Service{
			{
				ID: "fortnite", Name: "Fortnite", Company: "Epic Games", Category: "gaming",
				Features: []model.Feature{
					{ID: "matchmaking", Name: "Matchmaking", Description: "Queueing into matches"},
					{ID: "item-shop", Name: "Item Shop", Description: "Cosmetics storefront"},
				},
			},
			{
				ID: "quietco", Name: "QuietCo", Company: "Quiet Inc.", Category: "tools",
				Features: []model.Feature{
					{ID: "editor", Name: "Editor", Description: "Collaborative editing"},
				},
			},
		},
		EventImpacts: []model.EventImpact{
			{
				ID: "imp-1", EventID: "ev-1", ServiceID: "fortnite", FeatureID: "matchmaking",
				ImpactType: model.ImpactFullOutage, VerificationStatus: model.VerificationVerified,
				CreatedAt: ts("2025-10-20T16:00:00Z"),
			},
			{
				ID: "imp-2", EventID: "ev-1", ServiceID: "fortnite", FeatureID: "matchmaking",
				ImpactType: model.ImpactDegraded, VerificationStatus: model.VerificationVerified,
				CreatedAt: ts("2025-10-20T21:00:00Z"),
			},
			{
				ID: "imp-3", EventID: "ev-1", ServiceID: "fortnite", FeatureID: "item-shop",
				ImpactType: model.ImpactNoImpact, VerificationStatus: model.VerificationUserReported,
				CreatedAt: ts("2025-10-20T23:00:00Z"),
			},
		},
	}
}

func newEnricher(data model.TrackingData) *enrich.Enricher {
	store := repository.NewSnapshotStore(context.Background(), data, repository.WithoutMetrics())
	return enrich.New(store, enrich.WithoutMetrics())
}

func TestEnricherServices(t *testing.T) {
	Convey("Given an enricher over a fixture snapshot", t, func() {
		ctx := context.Background()
		e := newEnricher(fixtureData())

		Convey("When enriching all services", func() {
			services := e.Services(ctx)

			Convey("Then there is exactly one record per service, in snapshot order", func() {
				So(len(services), ShouldEqual, 2)
				So(services[0].ID, ShouldEqual, "fortnite")
				So(services[1].ID, ShouldEqual, "quietco")
			})

			Convey("Then distinct impacted features are counted once", func() {
				fortnite := services[0]
				// imp-1 and imp-2 both hit matchmaking; imp-3 is no_impact.
				So(fortnite.HasUsEast1Exposure, ShouldBeTrue)
				So(fortnite.ImpactedFeatures, ShouldEqual, 1)
				So(fortnite.ImpactedFeatureIDs, ShouldResemble, []string{"matchmaking"})
				So(fortnite.TotalFeatures, ShouldEqual, 2)
			})

			Convey("Then lastImpactDate is the max createdAt over every impact type", func() {
				fortnite := services[0]
				So(fortnite.LastImpactDate, ShouldNotBeNil)
				// imp-3 (no_impact) is the latest record and still counts for the date.
				So(fortnite.LastImpactDate.Equal(ts("2025-10-20T23:00:00Z")), ShouldBeTrue)
			})

			Convey("Then a service with zero impacts reports no exposure and no date", func() {
				quietco := services[1]
				So(quietco.HasUsEast1Exposure, ShouldBeFalse)
				So(quietco.ImpactedFeatures, ShouldEqual, 0)
				So(quietco.TotalFeatures, ShouldEqual, 1)
				So(quietco.LastImpactDate, ShouldBeNil)
			})

			Convey("Then exposure holds exactly when the impacted count is positive", func() {
				for _, svc := range services {
					So(svc.HasUsEast1Exposure, ShouldEqual, svc.ImpactedFeatures > 0)
				}
			})
		})

		Convey("When only no_impact and unknown records exist for a service", func() {
			data := fixtureData()
			data.EventImpacts = []model.EventImpact{
				{ID: "imp-a", EventID: "ev-1", ServiceID: "quietco", FeatureID: "editor",
					ImpactType: model.ImpactNoImpact, CreatedAt: ts("2025-10-20T10:00:00Z")},
				{ID: "imp-b", EventID: "ev-1", ServiceID: "quietco", FeatureID: "editor",
					ImpactType: model.ImpactUnknown, CreatedAt: ts("2025-10-20T11:00:00Z")},
			}
			services := newEnricher(data).Services(ctx)

			Convey("Then the service has a lastImpactDate but no exposure", func() {
				quietco := services[1]
				So(quietco.HasUsEast1Exposure, ShouldBeFalse)
				So(quietco.ImpactedFeatures, ShouldEqual, 0)
				So(quietco.LastImpactDate, ShouldNotBeNil)
				So(quietco.LastImpactDate.Equal(ts("2025-10-20T11:00:00Z")), ShouldBeTrue)
			})
		})

		Convey("When called twice against the same snapshot", func() {
			first := e.Services(ctx)
			second := e.Services(ctx)

			Convey("Then the results are identical", func() {
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestEnricherService(t *testing.T) {
	Convey("Given an enricher over a fixture snapshot", t, func() {
		ctx := context.Background()
		e := newEnricher(fixtureData())

		Convey("When asking for a known service", func() {
			svc, ok := e.Service(ctx, "fortnite")

			Convey("Then the enriched record matches the list entry", func() {
				So(ok, ShouldBeTrue)
				So(svc, ShouldResemble, e.Services(ctx)[0])
			})
		})

		Convey("When asking for an unknown service", func() {
			_, ok := e.Service(ctx, "nope")

			Convey("Then it reports absent, not an error", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestEnricherImpacts(t *testing.T) {
	Convey("Given an enricher over a fixture snapshot", t, func() {
		ctx := context.Background()

		Convey("When enriching impacts with intact references", func() {
			impacts := newEnricher(fixtureData()).Impacts(ctx)

			Convey("Then every reference resolves, in snapshot order", func() {
				So(len(impacts), ShouldEqual, 3)
				So(impacts[0].ID, ShouldEqual, "imp-1")
				So(impacts[0].Service, ShouldNotBeNil)
				So(impacts[0].Service.Name, ShouldEqual, "Fortnite")
				So(impacts[0].Event, ShouldNotBeNil)
				So(impacts[0].Event.ID, ShouldEqual, "ev-1")
				So(impacts[0].Feature, ShouldNotBeNil)
				So(impacts[0].Feature.ID, ShouldEqual, "matchmaking")
			})
		})

		Convey("When an impact has dangling references", func() {
			data := fixtureData()
			data.EventImpacts = append(data.EventImpacts, model.EventImpact{
				ID: "imp-dangling", EventID: "gone", ServiceID: "fortnite", FeatureID: "gone-feature",
				ImpactType: model.ImpactFullOutage, CreatedAt: ts("2025-10-21T00:00:00Z"),
			})
			impacts := newEnricher(data).Impacts(ctx)

			Convey("Then the unresolved fields are nil and nothing fails", func() {
				last := impacts[len(impacts)-1]
				So(last.ID, ShouldEqual, "imp-dangling")
				So(last.Service, ShouldNotBeNil)
				So(last.Event, ShouldBeNil)
				So(last.Feature, ShouldBeNil)
			})
		})
	})
}
