package seatRepo

import "seatadvisor/models"

// Venue layout: 15 layers of 10 positions each. Layers 1-5 are double-width
// regular rows near the front, 6-10 are the premium single-width
// perpendicular rows, 11-15 are double-width rows at the back.
const (
	regularTopLast         = 5
	perpendicularFrontLast = 10
	regularBottomLast      = 15
	positionsPerRow        = 10
)

// layerPrices is the per-layer price table in dollars.
var layerPrices = map[int]float64{
	1: 500, 2: 450, 3: 400, 4: 350, 5: 300,
	6: 600, 7: 550, 8: 500, 9: 450, 10: 400,
	11: 300, 12: 250, 13: 200, 14: 150, 15: 100,
}

type seatKey struct {
	layer    int
	side     string
	position int
}

// famousOccupants maps specific seats to their historical notes.
var famousOccupants = map[seatKey]string{
	{6, models.SideNone, 5}:  "A Nobel Prize laureate sat here during the 2019 ceremony",
	{6, models.SideNone, 6}:  "A world-renowned conductor occupied this seat for opening night",
	{7, models.SideNone, 1}:  "The venue's founder preferred this seat for important performances",
	{7, models.SideNone, 8}:  "An Olympic gold medalist watched the finals from here",
	{8, models.SideNone, 4}:  "A famous film director was known to choose this location",
	{1, models.SideLeft, 3}:  "A bestselling author sat here during the literary festival",
	{1, models.SideRight, 7}: "The mayor attended the inaugural event in this seat",
	{2, models.SideLeft, 5}:  "A tech entrepreneur regularly attends from this location",
	{2, models.SideRight, 2}: "A celebrated artist chose this seat for the gallery opening",
	{3, models.SideLeft, 9}:  "A renowned architect frequented this spot",
	{11, models.SideLeft, 4}: "A legendary performer watched from this seat",
	{11, models.SideRight, 6}: "The venue's founding patron sat here for 40 years",
	{12, models.SideLeft, 1}: "An inspiring educator who mentored thousands occupied this seat",
}

// GenerateVenueSeats builds the full deterministic seat pool with pricing,
// AC coverage, view ratings, historical notes and pros/cons.
func GenerateVenueSeats() []models.Seat {
	seats := make([]models.Seat, 0, 250)
	nextID := 1

	add := func(layer int, side string, position int, seatType string) {
		seat := models.Seat{
			ID:          nextID,
			Layer:       layer,
			Side:        side,
			Position:    position,
			Price:       layerPrices[layer],
			IsAvailable: true,
			SeatType:    seatType,
		}
		decorateSeat(&seat)
		seats = append(seats, seat)
		nextID++
	}

	for layer := 1; layer <= regularTopLast; layer++ {
		for _, side := range []string{models.SideLeft, models.SideRight} {
			for position := 1; position <= positionsPerRow; position++ {
				add(layer, side, position, models.SeatTypeRegularTop)
			}
		}
	}
	for layer := regularTopLast + 1; layer <= perpendicularFrontLast; layer++ {
		for position := 1; position <= positionsPerRow; position++ {
			add(layer, models.SideNone, position, models.SeatTypePerpendicularFront)
		}
	}
	for layer := perpendicularFrontLast + 1; layer <= regularBottomLast; layer++ {
		for _, side := range []string{models.SideLeft, models.SideRight} {
			for position := 1; position <= positionsPerRow; position++ {
				add(layer, side, position, models.SeatTypeRegularBottom)
			}
		}
	}

	return seats
}

// decorateSeat fills in AC coverage, view quality, historical notes and the
// derived pros/cons lists from the seat's location.
func decorateSeat(seat *models.Seat) {
	seat.HasAC = seatHasAC(seat.SeatType, seat.Layer, seat.Position)
	seat.ViewQuality = seatViewQuality(seat.SeatType, seat.Layer, seat.Position)
	seat.FamousOccupant = famousOccupants[seatKey{seat.Layer, seat.Side, seat.Position}]

	var pros, cons []string

	if seat.HasAC {
		pros = append(pros, "Air conditioning coverage")
	} else {
		cons = append(cons, "No direct AC coverage")
	}

	switch {
	case seat.ViewQuality >= 8:
		pros = append(pros, "Excellent view of the stage")
	case seat.ViewQuality >= 6:
		pros = append(pros, "Good view")
	case seat.ViewQuality <= 4:
		cons = append(cons, "Limited view from this angle")
	}

	if seat.SeatType == models.SeatTypePerpendicularFront {
		pros = append(pros, "Premium front row location", "Close to the main stage")
	}
	if seat.SeatType == models.SeatTypeRegularTop && seat.Layer <= 2 {
		pros = append(pros, "Close proximity to the front")
	}
	if seat.SeatType == models.SeatTypeRegularBottom && seat.Layer >= 14 {
		cons = append(cons, "Further from the stage")
	}

	switch {
	case seat.Position == 1 || seat.Position == 10:
		pros = append(pros, "Aisle seat - easy access")
	case seat.Position >= 4 && seat.Position <= 7:
		pros = append(pros, "Center position - balanced view")
	default:
		cons = append(cons, "Side position - may require turning to see")
	}

	switch seat.Side {
	case models.SideLeft:
		pros = append(pros, "Left side seating")
	case models.SideRight:
		pros = append(pros, "Right side seating")
	}

	if seat.FamousOccupant != "" {
		pros = append(pros, "Historical significance")
	}

	seat.Pros = pros
	seat.Cons = cons
}

// seatHasAC: AC coverage is best in the front and premium sections.
func seatHasAC(seatType string, layer, position int) bool {
	switch {
	case seatType == models.SeatTypePerpendicularFront:
		return true
	case seatType == models.SeatTypeRegularTop && layer <= 3:
		return true
	case seatType == models.SeatTypeRegularBottom && layer >= 12:
		return true
	case seatType == models.SeatTypeRegularTop && layer == 4 && position <= 5:
		return true
	}
	return false
}

// seatViewQuality rates 1-10, decaying with distance from the stage and
// rewarding center positions.
func seatViewQuality(seatType string, layer, position int) int {
	quality := 5
	switch seatType {
	case models.SeatTypePerpendicularFront:
		switch layer {
		case 6:
			quality = 10
		case 7:
			quality = 9
		case 8:
			quality = 8
		default:
			quality = 7
		}
	case models.SeatTypeRegularTop:
		quality = 8 - (layer - 1)
		if position >= 4 && position <= 7 {
			quality++
		}
	case models.SeatTypeRegularBottom:
		quality = 7 - (layer - 11)
		if position >= 4 && position <= 7 {
			quality++
		}
	}

	if quality < 1 {
		quality = 1
	}
	if quality > 10 {
		quality = 10
	}
	return quality
}
