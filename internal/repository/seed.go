package repository

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
)

// Demo account credentials for the fixture-backed backend
const (
	DemoOperatorEmail = "operator@demo.test"
	DemoSponsorEmail  = "sponsor@demo.test"
	DemoPassword      = "password123"
)

// DefaultSeed builds the demo dataset the fixture-backed backend starts
// with: one operator, one sponsor account, a handful of searchable sponsor
// profiles, events with tiers and demographics, and enough contract and
// payment history to light up the dashboard.
func DefaultSeed() *SeedData {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		// cost is a constant, GenerateFromPassword cannot fail here
		panic(err)
	}

	nowT := now()
	lastYear := nowT.AddDate(-1, 0, 0)

	operator := &domain.Profile{
		ID:                 "11111111-1111-4111-8111-111111111111",
		UserType:           domain.UserTypeOperator,
		Email:              DemoOperatorEmail,
		CompanyName:        "Moonrise Open Air Cinema",
		Phone:              "+1-555-0100",
		SubscriptionStatus: domain.SubscriptionStatusActive,
		SubscriptionTier:   domain.SubscriptionTierPro,
		CreatedAt:          lastYear,
		UpdatedAt:          lastYear,
	}

	sponsorUser := &domain.Profile{
		ID:                 "22222222-2222-4222-8222-222222222222",
		UserType:           domain.UserTypeSponsor,
		Email:              DemoSponsorEmail,
		CompanyName:        "Harbor Coffee Roasters",
		Phone:              "+1-555-0101",
		SubscriptionStatus: domain.SubscriptionStatusTrial,
		SubscriptionTier:   domain.SubscriptionTierFree,
		CreatedAt:          lastYear,
		UpdatedAt:          lastYear,
	}

	sponsorProfiles := []*domain.Profile{
		sponsorUser,
		{
			ID:                 "33333333-3333-4333-8333-333333333333",
			UserType:           domain.UserTypeSponsor,
			Email:              "hello@peakfitness.test",
			CompanyName:        "Peak Fitness Studios",
			SubscriptionStatus: domain.SubscriptionStatusActive,
			SubscriptionTier:   domain.SubscriptionTierPro,
			CreatedAt:          lastYear,
			UpdatedAt:          lastYear,
		},
		{
			ID:                 "44444444-4444-4444-8444-444444444444",
			UserType:           domain.UserTypeSponsor,
			Email:              "team@brightwave.test",
			CompanyName:        "Brightwave Software",
			SubscriptionStatus: domain.SubscriptionStatusActive,
			SubscriptionTier:   domain.SubscriptionTierPro,
			CreatedAt:          lastYear,
			UpdatedAt:          lastYear,
		},
		{
			ID:                 "55555555-5555-4555-8555-555555555555",
			UserType:           domain.UserTypeSponsor,
			Email:              "info@oldtownbrewery.test",
			CompanyName:        "Old Town Brewery",
			SubscriptionStatus: domain.SubscriptionStatusTrial,
			SubscriptionTier:   domain.SubscriptionTierFree,
			CreatedAt:          lastYear,
			UpdatedAt:          lastYear,
		},
	}

	sponsors := []*domain.SponsorProfile{
		{
			ID:                  "sp-0001",
			ProfileID:           sponsorUser.ID,
			BusinessType:        "food_beverage",
			Description:         "Specialty coffee roaster partnering with neighborhood events",
			TargetAudience:      []string{"young_professionals", "families"},
			BudgetTier:          domain.BudgetTierMid,
			BudgetMin:           50000,
			BudgetMax:           250000,
			PreferredEventTypes: []string{"outdoor_screening", "festival"},
			AssetsAvailable:     []string{"preroll", "sampling"},
			IsVerified:          true,
			Profile:             sponsorProfiles[0],
		},
		{
			ID:                  "sp-0002",
			ProfileID:           sponsorProfiles[1].ID,
			BusinessType:        "fitness",
			Description:         "Boutique fitness chain sponsoring active community events",
			TargetAudience:      []string{"young_professionals"},
			BudgetTier:          domain.BudgetTierHigh,
			BudgetMin:           200000,
			BudgetMax:           1000000,
			PreferredEventTypes: []string{"outdoor_screening"},
			AssetsAvailable:     []string{"preroll", "promo_codes"},
			IsVerified:          true,
			Profile:             sponsorProfiles[1],
		},
		{
			ID:                  "sp-0003",
			ProfileID:           sponsorProfiles[2].ID,
			BusinessType:        "technology",
			Description:         "Developer tools company reaching indie film audiences",
			TargetAudience:      []string{"students", "young_professionals"},
			BudgetTier:          domain.BudgetTierHigh,
			BudgetMin:           300000,
			BudgetMax:           2000000,
			PreferredEventTypes: []string{"festival", "premiere"},
			AssetsAvailable:     []string{"promo_codes"},
			IsVerified:          false,
			Profile:             sponsorProfiles[2],
		},
		{
			ID:                  "sp-0004",
			ProfileID:           sponsorProfiles[3].ID,
			BusinessType:        "food_beverage",
			Description:         "Local brewery with a taproom near the waterfront",
			TargetAudience:      []string{"adults"},
			BudgetTier:          domain.BudgetTierLow,
			BudgetMin:           10000,
			BudgetMax:           50000,
			PreferredEventTypes: []string{"outdoor_screening"},
			AssetsAvailable:     []string{"sampling"},
			IsVerified:          false,
			Profile:             sponsorProfiles[3],
		},
	}

	futureDate := nowT.AddDate(0, 1, 0).Format("2006-01-02")
	farFutureDate := nowT.AddDate(0, 2, 0).Format("2006-01-02")
	pastDate := nowT.AddDate(0, -2, 0).Format("2006-01-02")

	events := []*domain.Event{
		{
			ID:                 "ev-0001",
			OperatorID:         operator.ID,
			Title:              "Summer Classics Under the Stars",
			Description:        "Open-air screening series at the harbor amphitheater",
			FilmTitle:          "Casablanca",
			EventDate:          futureDate,
			StartTime:          "20:00",
			EndTime:            "23:00",
			VenueName:          "Harbor Amphitheater",
			Address:            domain.Address{Street: "1 Pier Rd", City: "Portside", State: "CA", Zip: "94101"},
			ExpectedAttendance: 450,
			Status:             domain.EventStatusPublished,
			CreatedAt:          nowT.AddDate(0, -2, 0),
			UpdatedAt:          nowT.AddDate(0, -2, 0),
			SponsorshipTiers: []domain.SponsorshipTier{
				{
					ID:           "tier-0001",
					EventID:      "ev-0001",
					Name:         "Headline Sponsor",
					Price:        150000,
					Benefits:     []string{"logo on screen", "preroll spot", "booth"},
					MaxSponsors:  1,
					DisplayOrder: 1,
					IsActive:     true,
				},
				{
					ID:           "tier-0002",
					EventID:      "ev-0001",
					Name:         "Community Sponsor",
					Price:        50000,
					Benefits:     []string{"logo on flyer"},
					MaxSponsors:  5,
					DisplayOrder: 2,
					IsActive:     true,
				},
			},
			Demographics: &domain.EventDemographics{
				ID:          "demo-0001",
				EventID:     "ev-0001",
				AgeRangeMin: 21,
				AgeRangeMax: 55,
				Interests:   []string{"film", "outdoors"},
				CustomTags:  []string{"waterfront"},
			},
		},
		{
			ID:                 "ev-0002",
			OperatorID:         operator.ID,
			Title:              "Indie Shorts Night",
			Description:        "Curated program of regional short films",
			FilmTitle:          "Shorts Program Vol. 3",
			EventDate:          farFutureDate,
			StartTime:          "19:00",
			EndTime:            "22:00",
			VenueName:          "Rialto Screening Room",
			Address:            domain.Address{Street: "88 Main St", City: "Portside", State: "CA", Zip: "94102"},
			ExpectedAttendance: 120,
			Status:             domain.EventStatusPublished,
			CreatedAt:          nowT.AddDate(0, 0, -10),
			UpdatedAt:          nowT.AddDate(0, 0, -10),
			SponsorshipTiers: []domain.SponsorshipTier{
				{
					ID:           "tier-0003",
					EventID:      "ev-0002",
					Name:         "Presenting Sponsor",
					Price:        75000,
					Benefits:     []string{"preroll spot"},
					MaxSponsors:  2,
					DisplayOrder: 1,
					IsActive:     true,
				},
			},
		},
		{
			ID:                 "ev-0003",
			OperatorID:         operator.ID,
			Title:              "Winter Gala Screening",
			Description:        "Completed fundraiser screening",
			FilmTitle:          "It's a Wonderful Life",
			EventDate:          pastDate,
			StartTime:          "18:00",
			EndTime:            "21:00",
			VenueName:          "Harbor Amphitheater",
			Address:            domain.Address{Street: "1 Pier Rd", City: "Portside", State: "CA", Zip: "94101"},
			ExpectedAttendance: 300,
			Status:             domain.EventStatusCompleted,
			CreatedAt:          nowT.AddDate(0, -4, 0),
			UpdatedAt:          nowT.AddDate(0, -2, 0),
			SponsorshipTiers:   []domain.SponsorshipTier{},
		},
	}

	applications := []*domain.SponsorshipApplication{
		{
			ID:          "app-0001",
			EventID:     "ev-0001",
			SponsorID:   "sp-0001",
			TierID:      "tier-0002",
			Status:      domain.ApplicationStatusPending,
			Message:     "We'd love to pour coffee at the harbor series.",
			SubmittedAt: nowT.AddDate(0, 0, -3),
		},
		{
			ID:          "app-0002",
			EventID:     "ev-0003",
			SponsorID:   "sp-0002",
			TierID:      "tier-0001",
			Status:      domain.ApplicationStatusAccepted,
			Message:     "Headline slot for the gala.",
			SubmittedAt: nowT.AddDate(0, -3, 0),
		},
	}

	contracts := []*domain.Contract{
		{
			ID:            "ct-0001",
			ApplicationID: "app-0002",
			OperatorID:    operator.ID,
			SponsorID:     "sp-0002",
			EventID:       "ev-0003",
			TierID:        "tier-0001",
			Amount:        150000,
			PlatformFee:   15000,
			Status:        domain.ContractStatusCompleted,
			CreatedAt:     nowT.AddDate(0, -3, 0),
			UpdatedAt:     nowT.AddDate(0, -2, 0),
		},
		{
			ID:            "ct-0002",
			ApplicationID: "app-0002",
			OperatorID:    operator.ID,
			SponsorID:     "sp-0001",
			EventID:       "ev-0003",
			TierID:        "tier-0002",
			Amount:        60000,
			PlatformFee:   6000,
			Status:        domain.ContractStatusCompleted,
			CreatedAt:     lastYear.AddDate(0, 1, 0),
			UpdatedAt:     lastYear.AddDate(0, 2, 0),
		},
	}

	payments := []*domain.Payment{
		{
			ID:         "pay-0001",
			ContractID: "ct-0001",
			Amount:     150000,
			Status:     domain.PaymentStatusCompleted,
			CreatedAt:  nowT.AddDate(0, -2, 0),
		},
		{
			ID:         "pay-0002",
			ContractID: "ct-0002",
			Amount:     60000,
			Status:     domain.PaymentStatusCompleted,
			CreatedAt:  lastYear.AddDate(0, 2, 0),
		},
	}

	activity := []*domain.ActivityLogItem{
		{
			ID:         "act-0001",
			UserID:     operator.ID,
			ActionType: "event_published",
			EntityType: "event",
			EntityID:   "ev-0001",
			Metadata:   map[string]interface{}{"title": "Summer Classics Under the Stars"},
			CreatedAt:  nowT.AddDate(0, -2, 0),
		},
		{
			ID:         "act-0002",
			UserID:     operator.ID,
			ActionType: "application_received",
			EntityType: "application",
			EntityID:   "app-0001",
			Metadata:   map[string]interface{}{"event_id": "ev-0001"},
			CreatedAt:  nowT.AddDate(0, 0, -3),
		},
	}

	users := []*MemoryUser{
		{Profile: operator, PasswordHash: string(hash)},
	}
	for _, p := range sponsorProfiles {
		users = append(users, &MemoryUser{Profile: p, PasswordHash: string(hash)})
	}

	return &SeedData{
		Users:        users,
		Events:       events,
		Sponsors:     sponsors,
		Applications: applications,
		Contracts:    contracts,
		Payments:     payments,
		Activity:     activity,
	}
}
