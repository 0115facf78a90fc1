package usecase

// DefaultFixtures is the built-in upcoming schedule seeded when the provider
// has nothing scheduled yet.
func DefaultFixtures() []ExternalMatch {
	return []ExternalMatch{
		{ID: "manual-ashes-warmup-day1", Name: "Prime Ministers XI vs England, Warm-up Day 1", Teams: []string{"Prime Ministers XI", "England"}, Venue: "Manuka Oval, Canberra", DateTimeGMT: "2025-11-29T03:40:00Z", MatchType: "test"},
		{ID: "manual-ban-ire-2nd-t20i", Name: "Bangladesh vs Ireland, 2nd T20I", Teams: []string{"Bangladesh", "Ireland"}, Venue: "Bir Sreshtho Flight Lieutenant Matiur Rahman Stadium, Chattogram", DateTimeGMT: "2025-11-29T12:00:00Z", MatchType: "t20"},
		{ID: "manual-pak-sl-final", Name: "Pakistan vs Sri Lanka, Final", Teams: []string{"Pakistan", "Sri Lanka"}, Venue: "Rawalpindi Cricket Stadium, Rawalpindi", DateTimeGMT: "2025-11-29T13:00:00Z", MatchType: "t20"},
		{ID: "manual-arg-bra-2nd-t20i", Name: "Argentina vs Brazil, 2nd T20I", Teams: []string{"Argentina", "Brazil"}, Venue: "St Albans Club, Corimayo, Buenos Aires", DateTimeGMT: "2025-11-29T13:00:00Z", MatchType: "t20"},
		{ID: "manual-arg-bra-3rd-t20i", Name: "Argentina vs Brazil, 3rd T20I", Teams: []string{"Argentina", "Brazil"}, Venue: "St Albans Club, Corimayo, Buenos Aires", DateTimeGMT: "2025-11-29T18:00:00Z", MatchType: "t20"},
		{ID: "manual-bahrain-thailand-5th", Name: "Bahrain vs Thailand, 5th Match", Teams: []string{"Bahrain", "Thailand"}, Venue: "Bayuemas Oval, Kuala Lumpur", DateTimeGMT: "2025-11-30T02:00:00Z", MatchType: "t20"},
		{ID: "manual-ashes-warmup-day2", Name: "Prime Ministers XI vs England, Warm-up Day 2", Teams: []string{"Prime Ministers XI", "England"}, Venue: "Manuka Oval, Canberra", DateTimeGMT: "2025-11-30T03:40:00Z", MatchType: "test"},
		{ID: "manual-ind-sa-1st-odi", Name: "India vs South Africa, 1st ODI", Teams: []string{"India", "South Africa"}, Venue: "JSCA International Stadium Complex, Ranchi", DateTimeGMT: "2025-11-30T08:00:00Z", MatchType: "odi"},
		{ID: "manual-arg-bra-4th-t20i", Name: "Argentina vs Brazil, 4th T20I", Teams: []string{"Argentina", "Brazil"}, Venue: "St Albans Club, Corimayo, Buenos Aires", DateTimeGMT: "2025-11-30T13:00:00Z", MatchType: "t20"},
		{ID: "manual-arg-bra-5th-t20i", Name: "Argentina vs Brazil, 5th T20I", Teams: []string{"Argentina", "Brazil"}, Venue: "St Albans Club, Corimayo, Buenos Aires", DateTimeGMT: "2025-11-30T18:00:00Z", MatchType: "t20"},
		{ID: "manual-malaysia-bahrain-6th", Name: "Malaysia vs Bahrain, 6th Match", Teams: []string{"Malaysia", "Bahrain"}, Venue: "Bayuemas Oval, Kuala Lumpur", DateTimeGMT: "2025-12-01T02:00:00Z", MatchType: "t20"},
		{ID: "manual-nz-wi-1st-test-day1", Name: "New Zealand vs West Indies, 1st Test, Day 1", Teams: []string{"New Zealand", "West Indies"}, Venue: "Hagley Oval, Christchurch", DateTimeGMT: "2025-12-01T22:00:00Z", MatchType: "test"},
		{ID: "manual-ban-ire-3rd-t20i", Name: "Bangladesh vs Ireland, 3rd T20I", Teams: []string{"Bangladesh", "Ireland"}, Venue: "Shere Bangla National Stadium, Dhaka", DateTimeGMT: "2025-12-02T12:00:00Z", MatchType: "t20"},
		{ID: "manual-nz-wi-1st-test-day2", Name: "New Zealand vs West Indies, 1st Test, Day 2", Teams: []string{"New Zealand", "West Indies"}, Venue: "Hagley Oval, Christchurch", DateTimeGMT: "2025-12-02T22:00:00Z", MatchType: "test"},
		{ID: "manual-ind-sa-2nd-odi", Name: "India vs South Africa, 2nd ODI", Teams: []string{"India", "South Africa"}, Venue: "Shaheed Veer Narayan Singh International Stadium, Raipur", DateTimeGMT: "2025-12-03T08:00:00Z", MatchType: "odi"},
		{ID: "manual-nz-wi-1st-test-day3", Name: "New Zealand vs West Indies, 1st Test, Day 3", Teams: []string{"New Zealand", "West Indies"}, Venue: "Hagley Oval, Christchurch", DateTimeGMT: "2025-12-03T22:00:00Z", MatchType: "test"},
		{ID: "manual-ashes-2nd-test-day1", Name: "Australia vs England, 2nd Test, Day 1", Teams: []string{"Australia", "England"}, Venue: "The Gabba, Brisbane", DateTimeGMT: "2025-12-04T04:00:00Z", MatchType: "test"},
		{ID: "manual-nz-wi-1st-test-day4", Name: "New Zealand vs West Indies, 1st Test, Day 4", Teams: []string{"New Zealand", "West Indies"}, Venue: "Hagley Oval, Christchurch", DateTimeGMT: "2025-12-04T22:00:00Z", MatchType: "test"},
		{ID: "manual-ashes-2nd-test-day2", Name: "Australia vs England, 2nd Test, Day 2", Teams: []string{"Australia", "England"}, Venue: "The Gabba, Brisbane", DateTimeGMT: "2025-12-05T04:00:00Z", MatchType: "test"},
		{ID: "manual-ind-sa-3rd-odi", Name: "India vs South Africa, 3rd ODI", Teams: []string{"India", "South Africa"}, Venue: "ACA-VDCA Cricket Stadium, Visakhapatnam", DateTimeGMT: "2025-12-05T08:00:00Z", MatchType: "odi"},
		{ID: "manual-nz-wi-1st-test-day5", Name: "New Zealand vs West Indies, 1st Test, Day 5", Teams: []string{"New Zealand", "West Indies"}, Venue: "Hagley Oval, Christchurch", DateTimeGMT: "2025-12-05T22:00:00Z", MatchType: "test"},
		{ID: "manual-ashes-2nd-test-day3", Name: "Australia vs England, 2nd Test, Day 3", Teams: []string{"Australia", "England"}, Venue: "The Gabba, Brisbane", DateTimeGMT: "2025-12-06T04:00:00Z", MatchType: "test"},
		{ID: "manual-ashes-2nd-test-day4", Name: "Australia vs England, 2nd Test, Day 4", Teams: []string{"Australia", "England"}, Venue: "The Gabba, Brisbane", DateTimeGMT: "2025-12-07T04:00:00Z", MatchType: "test"},
		{ID: "manual-bhutan-bahrain-1st-t20i", Name: "Bhutan vs Bahrain, 1st T20I", Teams: []string{"Bhutan", "Bahrain"}, Venue: "Gelephu International Cricket Ground, Gelephu", DateTimeGMT: "2025-12-08T03:30:00Z", MatchType: "t20"},
		{ID: "manual-ashes-2nd-test-day5", Name: "Australia vs England, 2nd Test, Day 5", Teams: []string{"Australia", "England"}, Venue: "The Gabba, Brisbane", DateTimeGMT: "2025-12-08T04:00:00Z", MatchType: "test"},
	}
}
