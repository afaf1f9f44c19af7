package domain

import "time"

// Respostas categóricas da avaliação de saúde do cliente.
// Os valores seguem os mesmos códigos exibidos no formulário.

type CheckinFrequency string
type WhatsappResponse string
type PaymentStatus string
type RechargeStatus string
type RoiBucket string
type GrowthProfile string
type EngagementLevel string
type ProductiveCheckin string
type ProgressLevel string
type RelationshipTrend string
type NoticePeriod string
type YesNo string
type CsatLevel string
type NpsLevel string
type MhsLevel string
type ResultsFocus string

const (
	CheckinWeekly      CheckinFrequency = "semanal"
	CheckinBiweekly    CheckinFrequency = "quinzenal"
	CheckinMonthly     CheckinFrequency = "mensal"
	CheckinNoFrequency CheckinFrequency = "sem_frequencia"

	WhatsappImmediate WhatsappResponse = "na_hora"
	WhatsappSameDay   WhatsappResponse = "mesmo_dia"
	WhatsappNextDay   WhatsappResponse = "dia_seguinte"
	WhatsappDaysLater WhatsappResponse = "dias_depois"
	WhatsappNoReply   WhatsappResponse = "nao_responde"

	PaymentOnTime     PaymentStatus = "em_dia"
	PaymentUpTo10Days PaymentStatus = "ate_10_dias"
	PaymentOver30Days PaymentStatus = "mais_30_dias"

	RechargeOnDay      RechargeStatus = "no_dia"
	RechargeUpTo10Days RechargeStatus = "ate_10_dias"
	RechargeOver30Days RechargeStatus = "mais_30_dias"

	RoiAbove3 RoiBucket = "roi_lt_3"
	Roi3      RoiBucket = "roi_3"
	Roi2      RoiBucket = "roi_2"
	Roi1      RoiBucket = "roi_1"
	RoiBelow1 RoiBucket = "roi_gt_1"

	GrowthProfileA        GrowthProfile = "perfil_a_lt_50k"
	GrowthProfileB        GrowthProfile = "perfil_b_gt_50k"
	GrowthNegativeProfile GrowthProfile = "negativo"
	GrowthHigh            GrowthProfile = "growth_high"
	GrowthMedium          GrowthProfile = "growth_medium"
	GrowthLow             GrowthProfile = "growth_low"
	GrowthNegative        GrowthProfile = "growth_negative"

	EngagementHighPerformance EngagementLevel = "alta_perf"
	EngagementStable          EngagementLevel = "estavel"
	EngagementAttention       EngagementLevel = "atencao"
	EngagementCritical        EngagementLevel = "critico"

	ProductiveCheckinYes     ProductiveCheckin = "sim"
	ProductiveCheckinPartial ProductiveCheckin = "parcial"
	ProductiveCheckinNo      ProductiveCheckin = "nao"

	ProgressHigh    ProgressLevel = "muito"
	ProgressPartial ProgressLevel = "parcial"
	ProgressNone    ProgressLevel = "nao"

	RelationshipImproved RelationshipTrend = "melhorou"
	RelationshipNeutral  RelationshipTrend = "neutro"
	RelationshipWorsened RelationshipTrend = "piorou"

	NoticeOver60Days  NoticePeriod = "gt_60_dias"
	Notice30To60Days  NoticePeriod = "30_60_dias"
	NoticeUnder30Days NoticePeriod = "lt_30_dias"

	Yes YesNo = "sim"
	No  YesNo = "nao"

	CsatAbove45 CsatLevel = "gt_4.5"
	CsatUpTo4   CsatLevel = "ate_4"
	CsatUpTo35  CsatLevel = "ate_3.5"
	CsatBelow3  CsatLevel = "lt_3"

	NpsPromoter  NpsLevel = "promotor"
	NpsNeutral   NpsLevel = "neutro"
	NpsDetractor NpsLevel = "detrator"

	MhsVeryDisappointed MhsLevel = "muito_desapontado"
	MhsSomewhat         MhsLevel = "pouco"
	MhsIndifferent      MhsLevel = "indiferente"
	MhsNotAtAll         MhsLevel = "nada"

	FocusROI    ResultsFocus = "roi"
	FocusSocial ResultsFocus = "social"
	FocusBoth   ResultsFocus = "both"
)

// HealthInput é a avaliação qualitativa mensal de um cliente
type HealthInput struct {
	ClientID string   `json:"client_id" validate:"required"`
	MonthKey MonthKey `json:"month_key" validate:"required,month_key"`

	// Engajamento
	Checkin     CheckinFrequency `json:"checkin" validate:"required,oneof=semanal quinzenal mensal sem_frequencia"`
	Whatsapp    WhatsappResponse `json:"whatsapp" validate:"required,oneof=na_hora mesmo_dia dia_seguinte dias_depois nao_responde"`
	Adimplencia PaymentStatus    `json:"adimplencia" validate:"required,oneof=em_dia ate_10_dias mais_30_dias"`
	Recarga     RechargeStatus   `json:"recarga" validate:"required,oneof=no_dia ate_10_dias mais_30_dias"`

	// Resultados
	ExpectsMeasurableResults YesNo           `json:"espera_resultado_mensuravel,omitempty" validate:"omitempty,oneof=sim nao"`
	MeasuresFinancialResults YesNo           `json:"mensura_resultado_financeiro,omitempty" validate:"omitempty,oneof=sim nao"`
	ResultsFocus             ResultsFocus    `json:"results_focus,omitempty" validate:"omitempty,oneof=roi social both"`
	RoiBucket                RoiBucket       `json:"roi_bucket,omitempty" validate:"omitempty,oneof=roi_lt_3 roi_3 roi_2 roi_1 roi_gt_1"`
	Growth                   GrowthProfile   `json:"growth,omitempty" validate:"omitempty,oneof=perfil_a_lt_50k perfil_b_gt_50k negativo growth_high growth_medium growth_low growth_negative"`
	EngagementVsAvg          EngagementLevel `json:"engagement_vs_avg,omitempty" validate:"omitempty,oneof=alta_perf estavel atencao critico"`

	// Relacionamento
	CheckinProdutivo      ProductiveCheckin `json:"checkin_produtivo" validate:"required,oneof=sim parcial nao"`
	Progresso             ProgressLevel     `json:"progresso" validate:"required,oneof=muito parcial nao"`
	RelacionamentoInterno RelationshipTrend `json:"relacionamento_interno" validate:"required,oneof=melhorou neutro piorou"`
	AvisoPrevio           NoticePeriod      `json:"aviso_previo" validate:"required,oneof=gt_60_dias 30_60_dias lt_30_dias"`
	PesquisaRespondida    YesNo             `json:"pesquisa_respondida" validate:"required,oneof=sim nao"`

	// Pesquisas
	CsatTecnico             CsatLevel `json:"csat_tecnico" validate:"required,oneof=gt_4.5 ate_4 ate_3.5 lt_3"`
	Nps                     NpsLevel  `json:"nps" validate:"required,oneof=promotor neutro detrator"`
	Mhs                     MhsLevel  `json:"mhs" validate:"required,oneof=muito_desapontado pouco indiferente nada"`
	PesquisaGeralRespondida YesNo     `json:"pesquisa_geral_respondida" validate:"required,oneof=sim nao"`

	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// ExpectsResults considera ausente como "sim"
func (h *HealthInput) ExpectsResults() bool {
	return h.ExpectsMeasurableResults != No
}

// FinancialResultsMeasurable considera ausente como "sim"
func (h *HealthInput) FinancialResultsMeasurable() bool {
	return h.MeasuresFinancialResults != No
}

// Focus retorna "both" quando não informado
func (h *HealthInput) Focus() ResultsFocus {
	if h.ResultsFocus == "" {
		return FocusBoth
	}
	return h.ResultsFocus
}

type HealthFlag string

const (
	FlagGreen  HealthFlag = "Green"
	FlagYellow HealthFlag = "Yellow"
	FlagRed    HealthFlag = "Red"
	FlagBlack  HealthFlag = "Black"
)

var HealthFlags = []HealthFlag{FlagGreen, FlagYellow, FlagRed, FlagBlack}

type HealthBreakdown struct {
	Engagement   float64 `json:"engagement"`
	Results      float64 `json:"results"`
	Relationship float64 `json:"relationship"`
	Surveys      float64 `json:"surveys"`
}

type HealthScoreResult struct {
	ClientID     string          `json:"client_id"`
	ClientName   string          `json:"client_name,omitempty"`
	MonthKey     MonthKey        `json:"month_key"`
	Score        float64         `json:"score"`
	Flag         HealthFlag      `json:"flag"`
	Action       string          `json:"action"`
	Breakdown    HealthBreakdown `json:"breakdown"`
	Policy       string          `json:"policy"`
	TenureMonths int             `json:"tenure_months"`
}
