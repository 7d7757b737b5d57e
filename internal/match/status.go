package match

// Short status codes assigned by the fixture provider.
const (
	StatusNotStarted  = "NS"
	StatusTBD         = "TBD"
	StatusFirstHalf   = "1H"
	StatusHalftime    = "HT"
	StatusSecondHalf  = "2H"
	StatusExtraTime   = "ET"
	StatusBreakTime   = "BT"
	StatusPenaltyLive = "P"
	StatusInterrupted = "INT"
	StatusFullTime    = "FT"
	StatusAfterExtra  = "AET"
	StatusPenalties   = "PEN"
	StatusPostponed   = "PST"
	StatusCancelled   = "CANC"
	StatusSuspended   = "SUSP"
	StatusAbandoned   = "ABD"
	StatusAwarded     = "AWD"
	StatusWalkover    = "WO"
)

// NotStartedStatuses are the codes of fixtures that have not kicked off.
var NotStartedStatuses = []string{StatusNotStarted, StatusTBD}

// FinishedStatuses are the codes that exclude a fixture from the live view.
// Postponed and cancelled fixtures count as finished here: they will not be
// played at their scheduled kickoff.
var FinishedStatuses = []string{
	StatusFullTime, StatusAfterExtra, StatusPenalties,
	StatusPostponed, StatusCancelled,
}

// IsNotStartedStatus reports whether a short status code means the fixture
// has not kicked off yet.
func IsNotStartedStatus(short string) bool {
	for _, s := range NotStartedStatuses {
		if s == short {
			return true
		}
	}
	return false
}

// IsFinishedStatus reports whether a short status code is in the finished
// set used by the live filter.
func IsFinishedStatus(short string) bool {
	for _, s := range FinishedStatuses {
		if s == short {
			return true
		}
	}
	return false
}
