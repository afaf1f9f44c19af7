package scoring

import "github.com/vfg2006/profitability-api/internal/domain"

// Tabelas de pontos por resposta. Os valores aparecem no detalhamento do dashboard
// e precisam permanecer exatamente iguais.

var checkinPoints = map[domain.CheckinFrequency]float64{
	domain.CheckinWeekly:      5,
	domain.CheckinBiweekly:    3,
	domain.CheckinMonthly:     0,
	domain.CheckinNoFrequency: -10,
}

var whatsappPoints = map[domain.WhatsappResponse]float64{
	domain.WhatsappImmediate: 5,
	domain.WhatsappSameDay:   0,
	domain.WhatsappNextDay:   -2,
	domain.WhatsappDaysLater: -5,
	domain.WhatsappNoReply:   -10,
}

var paymentPoints = map[domain.PaymentStatus]float64{
	domain.PaymentOnTime:     8.75,
	domain.PaymentUpTo10Days: -5,
	domain.PaymentOver30Days: -15,
}

var rechargePoints = map[domain.RechargeStatus]float64{
	domain.RechargeOnDay:      6.25,
	domain.RechargeUpTo10Days: -4,
	domain.RechargeOver30Days: -10,
}

type tenureBucket int

const (
	tenureUpTo2Months tenureBucket = iota
	tenure3To6Months
	tenureOver6Months
)

func bucketForTenure(months int) tenureBucket {
	switch {
	case months <= 2:
		return tenureUpTo2Months
	case months <= 6:
		return tenure3To6Months
	default:
		return tenureOver6Months
	}
}

var roiPoints = map[tenureBucket]map[domain.RoiBucket]float64{
	tenureUpTo2Months: {
		domain.RoiAbove3: 15,
		domain.Roi3:      12,
		domain.Roi2:      10.5,
		domain.Roi1:      7.5,
		domain.RoiBelow1: -3,
	},
	tenure3To6Months: {
		domain.RoiAbove3: 15,
		domain.Roi3:      12,
		domain.Roi2:      6,
		domain.Roi1:      0,
		domain.RoiBelow1: -7.5,
	},
	tenureOver6Months: {
		domain.RoiAbove3: 12,
		domain.Roi3:      6,
		domain.Roi2:      0,
		domain.Roi1:      -4.5,
		domain.RoiBelow1: -15,
	},
}

// penalidade aplicada quando o resultado financeiro não pode ser mensurado
const unmeasurableRoiPoints = -15.0

var growthPoints = map[domain.GrowthProfile]float64{
	domain.GrowthProfileA:        5,
	domain.GrowthProfileB:        5,
	domain.GrowthNegativeProfile: -10,
	domain.GrowthHigh:            5,
	domain.GrowthMedium:          2.5,
	domain.GrowthLow:             0,
	domain.GrowthNegative:        -10,
}

var engagementVsAvgPoints = map[domain.EngagementLevel]float64{
	domain.EngagementHighPerformance: 5,
	domain.EngagementStable:          2.5,
	domain.EngagementAttention:       -2.5,
	domain.EngagementCritical:        -10,
}

// Teto de cada componente de resultados: ROI vale 15 e social 10 quando o foco é ambos
const (
	roiComponentMax    = 15.0
	socialComponentMax = 10.0
	resultsVerticalMax = roiComponentMax + socialComponentMax
)

var productiveCheckinPoints = map[domain.ProductiveCheckin]float64{
	domain.ProductiveCheckinYes:     4.81,
	domain.ProductiveCheckinPartial: 0,
	domain.ProductiveCheckinNo:      -4.81,
}

var progressPoints = map[domain.ProgressLevel]float64{
	domain.ProgressHigh:    7.69,
	domain.ProgressPartial: 0.96,
	domain.ProgressNone:    -4.81,
}

var relationshipPoints = map[domain.RelationshipTrend]float64{
	domain.RelationshipImproved: 2.92,
	domain.RelationshipNeutral:  -1.17,
	domain.RelationshipWorsened: -2.92,
}

var noticePoints = map[domain.NoticePeriod]float64{
	domain.NoticeOver60Days:  5.83,
	domain.Notice30To60Days:  -1.17,
	domain.NoticeUnder30Days: -5.83,
}

var surveyAnsweredPoints = map[domain.YesNo]float64{
	domain.Yes: 3.75,
	domain.No:  -10,
}

var csatPoints = map[domain.CsatLevel]float64{
	domain.CsatAbove45: 3.75,
	domain.CsatUpTo4:   1.5,
	domain.CsatUpTo35:  -4,
	domain.CsatBelow3:  -8,
}

var npsPoints = map[domain.NpsLevel]float64{
	domain.NpsPromoter:  6.25,
	domain.NpsNeutral:   2.5,
	domain.NpsDetractor: -6.25,
}

var mhsPoints = map[domain.MhsLevel]float64{
	domain.MhsVeryDisappointed: 8.75,
	domain.MhsSomewhat:         5,
	domain.MhsIndifferent:      -5,
	domain.MhsNotAtAll:         -10,
}

var generalSurveyPoints = map[domain.YesNo]float64{
	domain.Yes: 6.25,
	domain.No:  -10,
}
