// Package domain contains the core data types for the packing list service.
// It depends only on uuid and is imported by every other internal package
// (packing, repo, service, handler).
package domain

import "time"

// Weather is the expected climate at the destination. Exactly one weather
// table is selected per request.
type Weather string

const (
	WeatherHot  Weather = "hot"
	WeatherMild Weather = "mild"
	WeatherCold Weather = "cold"
)

// Activity is a label from the fixed activity catalog. Labels that have no
// template list are accepted and contribute nothing.
type Activity string

const (
	ActivityBeach          Activity = "Beach"
	ActivityHiking         Activity = "Hiking"
	ActivityCityTours      Activity = "City Tours"
	ActivityBusiness       Activity = "Business"
	ActivityWinterSports   Activity = "Winter Sports"
	ActivityCamping        Activity = "Camping"
	ActivityPhotography    Activity = "Photography"
	ActivitySwimming       Activity = "Swimming"
	ActivityCycling        Activity = "Cycling"
	ActivityCulturalEvents Activity = "Cultural Events"
	ActivityFineDining     Activity = "Fine Dining"
	ActivityShopping       Activity = "Shopping"
	ActivityMuseumVisits   Activity = "Museum Visits"
	ActivityWaterSports    Activity = "Water Sports"
	ActivityNightlife      Activity = "Nightlife"
	ActivitySpaWellness    Activity = "Spa & Wellness"
	ActivityGolf           Activity = "Golf"
	ActivitySafari         Activity = "Safari"
	ActivityRoadTrip       Activity = "Road Trip"
	ActivityBackpacking    Activity = "Backpacking"
)

// TripRequest holds the trip parameters a packing list is derived from.
// StartDate and EndDate are calendar dates; only their year, month and day
// are significant.
type TripRequest struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Weather     Weather
	Activities  []Activity
}
