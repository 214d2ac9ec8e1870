package fbdomain

// Estruturas tipadas da resposta do Graph API para a query de expansão de
// campos sobre a edge de campanhas. Coleções aninhadas vêm limitadas a 100
// itens e não são paginadas separadamente.

type CampaignsResponse struct {
	Data   []Campaign `json:"data"`
	Paging Paging     `json:"paging"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

type Campaign struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	EffectiveStatus string     `json:"effective_status"`
	DailyBudget     string     `json:"daily_budget"`
	LifetimeBudget  string     `json:"lifetime_budget"`
	BudgetRemaining string     `json:"budget_remaining"`
	BidStrategy     string     `json:"bid_strategy"`
	StartTime       string     `json:"start_time"`
	StopTime        string     `json:"stop_time"`
	Adsets          *AdsetList `json:"adsets"`
}

type AdsetList struct {
	Data []Adset `json:"data"`
}

type Adset struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	EffectiveStatus  string  `json:"effective_status"`
	DailyBudget      string  `json:"daily_budget"`
	LifetimeBudget   string  `json:"lifetime_budget"`
	BudgetRemaining  string  `json:"budget_remaining"`
	BidAmount        string  `json:"bid_amount"`
	BidStrategy      string  `json:"bid_strategy"`
	OptimizationGoal string  `json:"optimization_goal"`
	BillingEvent     string  `json:"billing_event"`
	StartTime        string  `json:"start_time"`
	EndTime          string  `json:"end_time"`
	Ads              *AdList `json:"ads"`
}

type AdList struct {
	Data []Ad `json:"data"`
}

type Ad struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	EffectiveStatus string    `json:"effective_status"`
	Creative        *Creative `json:"creative"`
}

type Creative struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Title            string           `json:"title"`
	Body             string           `json:"body"`
	ImageURL         string           `json:"image_url"`
	ThumbnailURL     string           `json:"thumbnail_url"`
	VideoID          string           `json:"video_id"`
	CallToActionType string           `json:"call_to_action_type"`
	ObjectStorySpec  *ObjectStorySpec `json:"object_story_spec"`
}

type ObjectStorySpec struct {
	LinkData  *LinkData  `json:"link_data"`
	VideoData *VideoData `json:"video_data"`
}

// LinkData é a fonte de fallback para título/corpo/link quando os campos de
// nível superior do criativo estão ausentes.
type LinkData struct {
	Name         string        `json:"name"`
	Message      string        `json:"message"`
	Description  string        `json:"description"`
	Link         string        `json:"link"`
	Picture      string        `json:"picture"`
	CallToAction *CallToAction `json:"call_to_action"`
}

type VideoData struct {
	VideoID      string        `json:"video_id"`
	Title        string        `json:"title"`
	Message      string        `json:"message"`
	ImageURL     string        `json:"image_url"`
	CallToAction *CallToAction `json:"call_to_action"`
}

type CallToAction struct {
	Type  string `json:"type"`
	Value struct {
		Link string `json:"link"`
	} `json:"value"`
}

type MeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
