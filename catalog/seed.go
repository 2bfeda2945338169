// Copyright (c) 2025 Aniket Gond.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "github.com/aniketgond098/servizoapp/models"

// Seed returns the built-in provider dataset used on first boot, before any
// catalog state has been persisted. Provider "1" is the profile the
// provider-role dashboard manages.
func Seed() []models.ServiceProvider {
	return []models.ServiceProvider{
		{
			ID:           "1",
			Name:         "Arjun Mehta",
			Category:     "Plumbing",
			Location:     "Indiranagar, Bengaluru",
			Availability: models.StatusAvailable,
			Rating:       4.8,
			ReviewsCount: 2,
			Reviews: []models.Review{
				{ID: "r1", User: "Priya S.", Rating: 5, Comment: "Fixed a burst kitchen line within the hour. Spotless work.", Date: "2024-11-02"},
				{ID: "r2", User: "Rahul K.", Rating: 4, Comment: "Quick diagnosis, fair price.", Date: "2024-12-18"},
			},
			Price:           "₹499/hr",
			Avatar:          "https://i.pravatar.cc/150?img=12",
			Lat:             12.9719,
			Lng:             77.6412,
			Description:     "Licensed plumber for residential and light commercial work.",
			LongBio:         "Fifteen years of pipework across Bengaluru, from heritage bungalows to high-rise retrofits. I carry my own inspection camera and leave every site cleaner than I found it.",
			Skills:          []string{"Leak Detection", "Pipe Fitting", "Bathroom Renovation"},
			YearsExperience: 15,
			ResponseTime:    "~20 min",
			Verified:        true,
			RepeatCustomers: 64,
			Certifications:  []string{"BWSSB Licensed"},
			Equipment:       []string{"Inspection Camera", "Press Tool"},
			CompletedJobs:   312,
		},
		{
			ID:           "2",
			Name:         "Sneha Rao",
			Category:     "Electrical",
			Location:     "Koramangala, Bengaluru",
			Availability: models.StatusBusy,
			Rating:       4.9,
			ReviewsCount: 1,
			Reviews: []models.Review{
				{ID: "r3", User: "Vikram N.", Rating: 5, Comment: "Rewired our entire flat in a weekend.", Date: "2025-01-09"},
			},
			Price:           "₹650/hr",
			Avatar:          "https://i.pravatar.cc/150?img=47",
			Lat:             12.9352,
			Lng:             77.6245,
			Description:     "Certified electrician specialising in smart-home installs.",
			LongBio:         "I started on industrial panels and moved to residential automation. If it has a breaker, I can wire it, certify it, and document it.",
			Skills:          []string{"Wiring", "Smart Home", "EV Chargers"},
			YearsExperience: 9,
			ResponseTime:    "~45 min",
			Verified:        true,
			RepeatCustomers: 38,
			Certifications:  []string{"Class A Wireman"},
			Equipment:       []string{"Thermal Imager"},
			CompletedJobs:   188,
		},
		{
			ID:              "3",
			Name:            "Kabir Anand",
			Category:        "Tutoring",
			Location:        "HSR Layout, Bengaluru",
			Availability:    models.StatusAvailable,
			Rating:          4.7,
			ReviewsCount:    0,
			Reviews:         []models.Review{},
			Price:           "₹800/hr",
			Avatar:          "https://i.pravatar.cc/150?img=33",
			Lat:             12.9121,
			Lng:             77.6446,
			Description:     "Maths and physics tutor for grades 8-12.",
			LongBio:         "IIT alumnus, seven years of one-on-one tutoring. I teach the intuition first and the formula second.",
			Skills:          []string{"Mathematics", "Physics", "JEE Prep"},
			YearsExperience: 7,
			ResponseTime:    "~2 hrs",
			Verified:        false,
			RepeatCustomers: 21,
			Certifications:  []string{},
			Equipment:       []string{},
			CompletedJobs:   540,
		},
		{
			ID:           "4",
			Name:         "Meena Joshi",
			Category:     "Cleaning",
			Location:     "Whitefield, Bengaluru",
			Availability: models.StatusAvailable,
			Rating:       4.6,
			ReviewsCount: 1,
			Reviews: []models.Review{
				{ID: "r4", User: "Anita D.", Rating: 5, Comment: "Deep-cleaned a 3BHK before handover. Flawless.", Date: "2025-02-21"},
			},
			Price:           "₹350/hr",
			Avatar:          "https://i.pravatar.cc/150?img=25",
			Lat:             12.9698,
			Lng:             77.7500,
			Description:     "Deep cleaning for homes and offices, eco products only.",
			LongBio:         "My crew of three handles move-in, move-out, and post-renovation cleans. We bring everything and take the mess with us.",
			Skills:          []string{"Deep Cleaning", "Sofa Shampoo", "Move-out Clean"},
			YearsExperience: 6,
			ResponseTime:    "~1 hr",
			Verified:        true,
			RepeatCustomers: 87,
			Certifications:  []string{},
			Equipment:       []string{"Steam Cleaner", "Wet Vacuum"},
			CompletedJobs:   431,
		},
		{
			ID:              "5",
			Name:            "Farhan Ali",
			Category:        "Mechanic",
			Location:        "Jayanagar, Bengaluru",
			Availability:    models.StatusOffline,
			Rating:          4.5,
			ReviewsCount:    0,
			Reviews:         []models.Review{},
			Price:           "₹550/hr",
			Avatar:          "https://i.pravatar.cc/150?img=58",
			Lat:             12.9308,
			Lng:             77.5838,
			Description:     "Doorstep two-wheeler and hatchback servicing.",
			LongBio:         "I run a mobile workshop out of a van. Oil, brakes, clutch, electricals, most jobs done in your parking spot.",
			Skills:          []string{"Engine Service", "Brakes", "Breakdown Assist"},
			YearsExperience: 11,
			ResponseTime:    "~30 min",
			Verified:        false,
			RepeatCustomers: 52,
			Certifications:  []string{},
			Equipment:       []string{"Mobile Workshop Van"},
			CompletedJobs:   276,
		},
		{
			ID:              "6",
			Name:            "Lakshmi Narayan",
			Category:        "Gardening",
			Location:        "Malleshwaram, Bengaluru",
			Availability:    models.StatusAvailable,
			Rating:          4.9,
			ReviewsCount:    0,
			Reviews:         []models.Review{},
			Price:           "₹400/hr",
			Avatar:          "https://i.pravatar.cc/150?img=16",
			Lat:             13.0035,
			Lng:             77.5709,
			Description:     "Terrace gardens, lawn care, and drip irrigation setups.",
			LongBio:         "Third-generation gardener. I design low-water terrace gardens that survive Bengaluru summers without daily attention.",
			Skills:          []string{"Terrace Gardens", "Drip Irrigation", "Lawn Care"},
			YearsExperience: 18,
			ResponseTime:    "~3 hrs",
			Verified:        true,
			RepeatCustomers: 43,
			Certifications:  []string{},
			Equipment:       []string{},
			CompletedJobs:   205,
		},
		{
			ID:              "7",
			Name:            "Divya Pillai",
			Category:        "AC Repair",
			Location:        "Bandra West, Mumbai",
			Availability:    models.StatusBusy,
			Rating:          4.4,
			ReviewsCount:    0,
			Reviews:         []models.Review{},
			Price:           "₹600/visit",
			Avatar:          "https://i.pravatar.cc/150?img=41",
			Lat:             19.0596,
			Lng:             72.8295,
			Description:     "Split and window AC servicing, gas top-ups, installs.",
			LongBio:         "Factory-trained on three major brands. I keep genuine spares in stock so a service call rarely needs a second visit.",
			Skills:          []string{"Gas Top-up", "Installation", "Compressor Repair"},
			YearsExperience: 8,
			ResponseTime:    "~90 min",
			Verified:        false,
			RepeatCustomers: 29,
			Certifications:  []string{"HVAC Level 2"},
			Equipment:       []string{"Vacuum Pump", "Manifold Gauge"},
			CompletedJobs:   164,
		},
		{
			ID:              "8",
			Name:            "Rohit Sen",
			Category:        "Moving",
			Location:        "Salt Lake, Kolkata",
			Availability:    models.StatusAvailable,
			Rating:          4.3,
			ReviewsCount:    0,
			Reviews:         []models.Review{},
			Price:           "₹2,500/job",
			Avatar:          "https://i.pravatar.cc/150?img=63",
			Lat:             22.5867,
			Lng:             88.4171,
			Description:     "Local shifting with packing, loading, and reassembly.",
			LongBio:         "Two trucks, a four-man crew, and enough bubble wrap for a piano. Flat quotes, no surprises on moving day.",
			Skills:          []string{"Packing", "Furniture Assembly", "Local Shifting"},
			YearsExperience: 10,
			ResponseTime:    "~4 hrs",
			Verified:        false,
			RepeatCustomers: 12,
			Certifications:  []string{},
			Equipment:       []string{"Tata 407", "Hydra Trolley"},
			CompletedJobs:   98,
		},
	}
}
