package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"climatestats.app/internal/core/climate"
	"climatestats.app/internal/ports"
	"climatestats.app/pkg/errors"
)

// RouteIndex lists the available routes
type RouteIndex struct {
	Routes []string `json:"routes"`
}

// TobsEntry is one temperature observation of the most active station
type TobsEntry struct {
	Date string   `json:"date"`
	Tobs *float64 `json:"tobs"`
}

// TemperatureStatsResponse carries min/avg/max temperature. All three are
// null when no observation matched the range.
type TemperatureStatsResponse struct {
	TMIN *float64 `json:"TMIN"`
	TAVG *float64 `json:"TAVG"`
	TMAX *float64 `json:"TMAX"`
}

type rangeURI struct {
	Start string `uri:"start" binding:"required,isodate"`
	End   string `uri:"end" binding:"omitempty,isodate"`
}

var routeIndex = RouteIndex{Routes: []string{
	"/",
	"/api/v1.0/precipitation",
	"/api/v1.0/precipitation/by-station",
	"/api/v1.0/stations",
	"/api/v1.0/tobs",
	"/api/v1.0/<start>",
	"/api/v1.0/<start>/<end>",
	"/health",
	"/metrics",
}}

// getRoutes handles GET / requests
func (s *HTTPServerAdapter) getRoutes(c *gin.Context) {
	s.formatter.Write(c, http.StatusOK, routeIndex)
}

// getPrecipitation handles GET /api/v1.0/precipitation requests
func (s *HTTPServerAdapter) getPrecipitation(c *gin.Context) {
	feed, err := s.climateUseCase.PrecipitationFeed(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := make(map[string]*float64, len(feed))
	for date, prcp := range feed {
		response[date.String()] = prcp
	}
	s.formatter.Write(c, http.StatusOK, response)
}

// getPrecipitationByStation handles GET /api/v1.0/precipitation/by-station requests
func (s *HTTPServerAdapter) getPrecipitationByStation(c *gin.Context) {
	feed, err := s.climateUseCase.PrecipitationByStation(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := make(map[string]map[string]*float64, len(feed))
	for date, byStation := range feed {
		response[date.String()] = byStation
	}
	s.formatter.Write(c, http.StatusOK, response)
}

// getStations handles GET /api/v1.0/stations requests
func (s *HTTPServerAdapter) getStations(c *gin.Context) {
	roster, err := s.climateUseCase.StationRoster(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.formatter.Write(c, http.StatusOK, roster)
}

// getTobs handles GET /api/v1.0/tobs requests
func (s *HTTPServerAdapter) getTobs(c *gin.Context) {
	observations, err := s.climateUseCase.MostActiveStationTemperatureFeed(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := make([]TobsEntry, len(observations))
	for i, o := range observations {
		response[i] = TobsEntry{Date: o.Date.String(), Tobs: o.Value}
	}
	s.formatter.Write(c, http.StatusOK, response)
}

// getTemperatureStats handles GET /api/v1.0/:start and /api/v1.0/:start/:end requests
func (s *HTTPServerAdapter) getTemperatureStats(c *gin.Context) {
	var uri rangeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		s.handleError(c, errors.NewInvalidDateError("dates must be formatted as YYYY-MM-DD", err))
		return
	}

	dateRange, err := climate.ParseRange(uri.Start, uri.End)
	if err != nil {
		s.handleError(c, err)
		return
	}

	aggregate, err := s.climateUseCase.RangeTemperatureStats(c.Request.Context(), dateRange)
	if errors.IsNoMatchingRecordsError(err) {
		s.logger.Debug("No temperature observations in range", ports.F("range", dateRange.String()))
		s.formatter.Write(c, http.StatusOK, TemperatureStatsResponse{})
		return
	}
	if err != nil {
		s.handleError(c, err)
		return
	}

	s.formatter.Write(c, http.StatusOK, TemperatureStatsResponse{
		TMIN: &aggregate.Min,
		TAVG: &aggregate.Avg,
		TMAX: &aggregate.Max,
	})
}
