package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/gridcal/pkg/errors"
	"github.com/matzehuels/gridcal/pkg/isoweek"
	"github.com/matzehuels/gridcal/pkg/pipeline"
)

// weekJSON is one ISO week in API responses.
type weekJSON struct {
	Year   int    `json:"year"`
	Week   int    `json:"week"`
	Label  string `json:"label"`
	Start  string `json:"start"`
	End    string `json:"end"`
	InYear bool   `json:"in_year"`
}

type weeksJSON struct {
	Year  int        `json:"year"`
	Count int        `json:"count"`
	Weeks []weekJSON `json:"weeks"`
}

func newWeekJSON(year, week int, r isoweek.Range) weekJSON {
	return weekJSON{
		Year:   year,
		Week:   week,
		Label:  r.String(),
		Start:  r.Start.String(),
		End:    r.End.String(),
		InYear: week < isoweek.MaxWeek || isoweek.HasWeek53(year),
	}
}

// handleWeeks lists every week of a year. Responses are cached per year.
func (s *Server) handleWeeks(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(chi.URLParam(r, "year"), "year", errors.ErrCodeInvalidYear)
	if err == nil {
		err = errors.ValidateYear(year)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	key := s.runner.Keyer.WeeksKey(year)
	if data, hit := s.cacheGet(r.Context(), key); hit {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache", "hit")
		_, _ = w.Write(data)
		return
	}

	n := isoweek.WeeksInYear(year)
	resp := weeksJSON{Year: year, Count: n, Weeks: make([]weekJSON, 0, n)}
	for week := 1; week <= n; week++ {
		wr, _ := isoweek.WeekRange(year, week)
		resp.Weeks = append(resp.Weeks, newWeekJSON(year, week, wr))
	}

	data, err := json.Marshal(resp)
	if err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode weeks"))
		return
	}
	data = append(data, '\n')
	s.cacheSet(r.Context(), key, data)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "miss")
	_, _ = w.Write(data)
}

// handleWeek resolves a single week.
func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(chi.URLParam(r, "year"), "year", errors.ErrCodeInvalidYear)
	if err == nil {
		err = errors.ValidateYear(year)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	week, err := intParam(chi.URLParam(r, "week"), "week", errors.ErrCodeInvalidWeek)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	wr, err := isoweek.WeekRange(year, week)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newWeekJSON(year, week, wr))
}

// handleCalendar renders a calendar in one format.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	opts, format, err := calendarOptions(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Logger = s.logger

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cacheStatus := "miss"
	if result.CacheInfo.RenderHit {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("X-Cache", cacheStatus)
	w.Header().Set("X-Run-ID", result.RunID)
	_, _ = w.Write(result.Artifacts[format])
}

// calendarOptions builds pipeline options from query parameters.
func calendarOptions(q url.Values) (pipeline.Options, string, error) {
	opts := pipeline.Options{
		Kind:         q.Get("kind"),
		Mode:         q.Get("mode"),
		DividerStyle: q.Get("divider_style"),
		Background:   q.Get("background"),
		NoDates:      q.Get("no_dates") == "true",
		MonthWeeks:   q.Get("month_weeks") == "true",
	}

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return opts, "", err
	}
	opts.Formats = []string{format}

	var err error
	if opts.From, err = intParam(q.Get("from"), "from", errors.ErrCodeInvalidYear); err != nil {
		return opts, "", err
	}
	if v := q.Get("to"); v != "" {
		if opts.To, err = intParam(v, "to", errors.ErrCodeInvalidYear); err != nil {
			return opts, "", err
		}
	}
	for name, dst := range map[string]*float64{
		"width":  &opts.Width,
		"height": &opts.Height,
		"scale":  &opts.Scale,
	} {
		if v := q.Get(name); v != "" {
			if *dst, err = strconv.ParseFloat(v, 64); err != nil {
				return opts, "", errors.New(errors.ErrCodeInvalidInput, "%s must be a number, got %q", name, v)
			}
		}
	}
	for name, dst := range map[string]**float64{
		"gap":           &opts.Gap,
		"left_margin":   &opts.LeftMargin,
		"header_height": &opts.HeaderHeight,
	} {
		if v := q.Get(name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return opts, "", errors.New(errors.ErrCodeInvalidInput, "%s must be a number, got %q", name, v)
			}
			*dst = pipeline.Float(f)
		}
	}
	return opts, format, nil
}

func intParam(s, name string, code errors.Code) (int, error) {
	if s == "" {
		return 0, errors.New(code, "%s is required", name)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(code, "%s must be an integer, got %q", name, s)
	}
	return n, nil
}
