package source

import (
	"time"

	"github.com/realityai/inspect-api/internal/models"
)

// The sample catalog mirrors the original demo data set: three toured
// properties, with a full inspection for the Oak Street house. It is served
// when a store fetch fails or returns nothing, so the dashboard always has
// something to show.

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := date(year, month, day)
	return &t
}

// SampleProperties returns the built-in property catalog. Callers receive a
// fresh slice and may modify it freely.
func SampleProperties() []models.Property {
	return []models.Property{
		{
			ID:             "1",
			Address:        "1425 Oak Street",
			City:           "San Francisco",
			State:          "CA",
			ZipCode:        "94117",
			TourDate:       datePtr(2025, time.October, 28),
			IssueCount:     8,
			CriticalIssues: 2,
			ImageURL:       "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?q=80&w=1080",
			Grade:          "C+",
			EstimatedPrice: 1250000,
			ListPrice:      1250000,
			OurEstimate:    1214000,
		},
		{
			ID:             "2",
			Address:        "892 Maple Avenue",
			City:           "Berkeley",
			State:          "CA",
			ZipCode:        "94704",
			TourDate:       datePtr(2025, time.October, 30),
			IssueCount:     5,
			CriticalIssues: 1,
			ImageURL:       "https://images.unsplash.com/photo-1760229090663-fe14715d4efe?q=80&w=1080",
			Grade:          "B",
			EstimatedPrice: 895000,
			ListPrice:      895000,
			OurEstimate:    881000,
		},
		{
			ID:             "3",
			Address:        "2156 Pine Ridge Drive",
			City:           "Oakland",
			State:          "CA",
			ZipCode:        "94611",
			TourDate:       datePtr(2025, time.November, 2),
			IssueCount:     12,
			CriticalIssues: 4,
			ImageURL:       "https://images.unsplash.com/photo-1717245233537-1b51136c35ab?q=80&w=1080",
			Grade:          "D",
			EstimatedPrice: 675000,
			ListPrice:      675000,
			OurEstimate:    625000,
		},
	}
}

// SampleIssues returns the built-in inspection findings for a property, or
// an empty slice for properties without a recorded sample inspection.
func SampleIssues(propertyID string) []models.Issue {
	if propertyID != "1" {
		return []models.Issue{}
	}

	detected := date(2025, time.October, 25)

	return []models.Issue{
		{
			ID:            "1",
			PropertyID:    "1",
			Title:         "Foundation Crack - Structural Integrity Risk",
			Description:   "Horizontal crack detected in basement foundation wall measuring 6 feet in length and 3mm width. Pattern analysis indicates progressive settling over 18-24 months with thermal imaging revealing moisture intrusion behind the crack surface.|Requires immediate evaluation by a licensed structural engineer. Crack orientation suggests potential soil expansion issues that may affect other foundation areas.",
			ConcernLevel:  9,
			Category:      models.CategoryStructural,
			ImageURL:      "https://images.unsplash.com/photo-1758402481575-8245f9b8fbcc?q=80&w=1080",
			DetectedDate:  detected,
			EstimatedCost: models.CostRange{Low: 8500, High: 15000},
		},
		{
			ID:            "2",
			PropertyID:    "1",
			Title:         "Active Water Intrusion - Master Bedroom Ceiling",
			Description:   "Brown water staining covering 18 sq ft of ceiling drywall with discoloration gradient indicating ongoing moisture penetration. Pattern suggests source from compromised roof flashing. Moisture readings show 28% water content (normal: <15%).|High probability of concealed mold growth. Immediate actions: (1) Professional roof inspection, (2) Mold testing and air quality assessment, (3) Water damage restoration after leak repair.",
			ConcernLevel:  8,
			Category:      models.CategoryWaterDamage,
			ImageURL:      "https://images.unsplash.com/photo-1737739973200-61c2ae4d1272?q=80&w=1080",
			DetectedDate:  detected,
			EstimatedCost: models.CostRange{Low: 3200, High: 5800},
		},
		{
			ID:            "3",
			PropertyID:    "1",
			Title:         "Compromised Window Seal - Energy Efficiency Loss",
			Description:   "Failed seal in double-pane living room window (4'x6' unit). Condensation between glass panes indicates argon gas escape and moisture entry. R-value reduced from 3.2 to 1.8 (44% loss).|Annual energy cost impact: $180-$240 in additional heating/cooling expenses. Replacement recommended within 6-12 months to prevent efficiency degradation and wood frame rot.",
			ConcernLevel:  4,
			Category:      models.CategoryWindows,
			ImageURL:      "https://images.unsplash.com/photo-1643461394487-7e2856b215b8?q=80&w=1080",
			DetectedDate:  detected,
			EstimatedCost: models.CostRange{Low: 450, High: 800},
		},
		{
			ID:            "4",
			PropertyID:    "1",
			Title:         "Critical Roof Deterioration - Weather Vulnerability",
			Description:   "Drone imagery identified 14 missing asphalt shingles and 23 damaged/curled shingles across south-facing roof section (220 sq ft). Granule loss exceeds 40% with underlayment exposure in 3 locations creating immediate water infiltration risk.|Roof age: 22-25 years (typical lifespan: 20-25 years). Emergency patch repair needed immediately, followed by full replacement within current season.",
			ConcernLevel:  7,
			Category:      models.CategoryRoofing,
			ImageURL:      "https://images.unsplash.com/photo-1572120360610-d971b9d7767c?q=80&w=1080",
			DetectedDate:  detected,
			EstimatedCost: models.CostRange{Low: 12000, High: 18500},
		},
		{
			ID:            "5",
			PropertyID:    "1",
			Title:         "Outdated Electrical Panel - Safety Code Concerns",
			Description:   "100-amp main panel (circa 2002) with Federal Pacific Electric breakers (known for failure-to-trip issues). Panel shows 6 unlabeled circuits, bus bar corrosion, and overheating evidence on breaker #7. System at 82% capacity.|Code compliance issues: Missing AFCI protection on bedrooms, insufficient GFCI in wet areas, no surge protection. Insurance companies increasingly deny claims on FPE panels.",
			ConcernLevel:  6,
			Category:      models.CategoryElectrical,
			ImageURL:      "https://images.unsplash.com/photo-1576446468729-7674e99608f5?q=80&w=1080",
			DetectedDate:  detected,
			EstimatedCost: models.CostRange{Low: 2500, High: 4500},
		},
		{
			ID:            "6",
			PropertyID:    "1",
			Title:         "Toxic Mold Growth - Health Hazard Detected",
			Description:   "Stachybotrys chartarum (black mold) colony covering 4 sq ft around shower enclosure and ceiling vent. Colony age: 6-9 months. Root cause: inadequate ventilation (35 CFM vs. required 50 CFM) and moisture retention in grout.|Health risks: respiratory irritation, allergic reactions, mycotoxin exposure. Requires professional EPA-compliant abatement, material replacement, ventilation upgrade, and post-remediation testing.",
			ConcernLevel:  7,
			Category:      models.CategoryMoldMoisture,
			ImageURL:      "https://images.unsplash.com/photo-1708895240122-418c6902685e?q=80&w=1080",
			DetectedDate:  detected,
			EstimatedCost: models.CostRange{Low: 1800, High: 3200},
		},
		{
			ID:            "7",
			PropertyID:    "1",
			Title:         "HVAC System End-of-Life - Replacement Planning Required",
			Description:   "Central AC/heating system manufactured 2007 (current age: 18 years). Compressor at 68% efficiency resulting in 32% energy waste. Heat exchanger shows micro-cracking with CO risk. Uses prohibited R-22 refrigerant.|Industry lifespan: 15-20 years. Currently operational but failure risk increases exponentially after year 18. Modern system would save $85-$120/month in energy costs.",
			ConcernLevel:  5,
			Category:      models.CategoryHVAC,
			ImageURL:      "https://images.unsplash.com/photo-1576446468729-7674e99608f5?q=80&w=1080",
			DetectedDate:  detected,
			EstimatedCost: models.CostRange{Low: 6500, High: 12000},
		},
		{
			ID:            "8",
			PropertyID:    "1",
			Title:         "Gutter System Failure - Foundation Risk Factor",
			Description:   "65% gutter blockage with improper pitch causing pooling in 3 sections. Downspouts discharge within 2 feet of foundation (required: 6 feet). Two detached segments allow direct water flow against foundation wall.|Combined effect: 400+ gallons per rainfall directed at foundation, contributing to hydrostatic pressure and exacerbating foundation crack. Immediate correction needed.",
			ConcernLevel:  5,
			Category:      models.CategoryExterior,
			ImageURL:      "https://images.unsplash.com/photo-1572120360610-d971b9d7767c?q=80&w=1080",
			DetectedDate:  detected,
			EstimatedCost: models.CostRange{Low: 800, High: 1500},
		},
	}
}
