package scoring

import (
	"math"
	"time"

	"github.com/vfg2006/profitability-api/internal/domain"
	"github.com/vfg2006/profitability-api/pkg/utils"
)

const (
	maxScore = 100.0
	minScore = 0.0
)

type flagRule struct {
	threshold float64
	flag      domain.HealthFlag
	action    string
}

// limites inferiores inclusivos, do maior para o menor
var flagRules = []flagRule{
	{threshold: 81, flag: domain.FlagGreen, action: "Saudável, foco em Upsell"},
	{threshold: 51, flag: domain.FlagYellow, action: "Atenção, gargalos operacionais"},
	{threshold: 26, flag: domain.FlagRed, action: "Risco Crítico, intervenção da Coordenação"},
}

var blackFlag = flagRule{flag: domain.FlagBlack, action: "Churn iminente, prioridade máxima"}

// FlagFor mapeia a nota para a cor e a ação recomendada
func FlagFor(score float64) (domain.HealthFlag, string) {
	for _, rule := range flagRules {
		if score >= rule.threshold {
			return rule.flag, rule.action
		}
	}
	return blackFlag.flag, blackFlag.action
}

// finalScore limita a soma a [0,100], arredonda em duas casas e deriva a cor
// da nota arredondada, a mesma exibida no painel
func finalScore(total float64) (float64, domain.HealthFlag, string) {
	score := utils.RoundWithTwoDecimalPlace(math.Max(minScore, math.Min(maxScore, total)))
	flag, action := FlagFor(score)
	return score, flag, action
}

// ScoreHealth calcula a nota de saúde do cliente. A data de referência é
// recebida como parâmetro para o cálculo do tempo de contrato.
func ScoreHealth(input *domain.HealthInput, client *domain.ClientConfig, now time.Time) domain.HealthScoreResult {
	policy := SelectPolicy(input)
	tenure := client.TenureMonths(now)

	engagement := engagementPoints(input) * policy.Engagement
	relationship := relationshipVerticalPoints(input) * policy.Relationship
	surveys := surveyVerticalPoints(input) * policy.Surveys

	results := 0.0
	if policy.IncludesResults() {
		results = resultsPoints(input, bucketForTenure(tenure)) * policy.Results
	}

	score, flag, action := finalScore(engagement + results + relationship + surveys)

	result := domain.HealthScoreResult{
		ClientID:     input.ClientID,
		MonthKey:     input.MonthKey,
		Score:        score,
		Flag:         flag,
		Action:       action,
		Policy:       policy.Name,
		TenureMonths: tenure,
		Breakdown: domain.HealthBreakdown{
			Engagement:   utils.RoundWithTwoDecimalPlace(engagement),
			Results:      utils.RoundWithTwoDecimalPlace(results),
			Relationship: utils.RoundWithTwoDecimalPlace(relationship),
			Surveys:      utils.RoundWithTwoDecimalPlace(surveys),
		},
	}
	if client != nil {
		result.ClientName = client.Name
	}

	return result
}

func engagementPoints(input *domain.HealthInput) float64 {
	return checkinPoints[input.Checkin] +
		whatsappPoints[input.Whatsapp] +
		paymentPoints[input.Adimplencia] +
		rechargePoints[input.Recarga]
}

// resultsPoints combina ROI e social de acordo com o foco escolhido.
// Com foco exclusivo o componente é reescalado para ocupar os 25 pontos da vertical.
func resultsPoints(input *domain.HealthInput, bucket tenureBucket) float64 {
	roi := unmeasurableRoiPoints
	if input.FinancialResultsMeasurable() {
		roi = roiPoints[bucket][input.RoiBucket]
	}

	social := growthPoints[input.Growth] + engagementVsAvgPoints[input.EngagementVsAvg]

	switch input.Focus() {
	case domain.FocusROI:
		return roi * (resultsVerticalMax / roiComponentMax)
	case domain.FocusSocial:
		return social * (resultsVerticalMax / socialComponentMax)
	default:
		return roi + social
	}
}

func relationshipVerticalPoints(input *domain.HealthInput) float64 {
	return productiveCheckinPoints[input.CheckinProdutivo] +
		progressPoints[input.Progresso] +
		relationshipPoints[input.RelacionamentoInterno] +
		noticePoints[input.AvisoPrevio] +
		surveyAnsweredPoints[input.PesquisaRespondida]
}

func surveyVerticalPoints(input *domain.HealthInput) float64 {
	return csatPoints[input.CsatTecnico] +
		npsPoints[input.Nps] +
		mhsPoints[input.Mhs] +
		generalSurveyPoints[input.PesquisaGeralRespondida]
}
