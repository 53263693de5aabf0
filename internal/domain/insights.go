package domain

// Shapes de resposta dos endpoints agregados do dashboard. Todo campo numérico
// tem default zero explícito: datasets vazios produzem objetos zerados, nunca
// campos ausentes.

// BarMetrics são as métricas principais do bar (valores já em reais).
type BarMetrics struct {
	TotalTransactions int     `json:"total_transactions"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalProductsSold float64 `json:"total_products_sold"`
	AvgTicket         float64 `json:"avg_ticket"`
}

// SalesByDateRow é o faturamento agregado de um dia de calendário.
type SalesByDateRow struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Count   float64 `json:"count"`
}

// ProductSalesRow é uma linha do ranking de produtos por faturamento.
type ProductSalesRow struct {
	Name     string  `json:"name"`
	Revenue  float64 `json:"revenue"`
	Quantity float64 `json:"quantity"`
}

// CategorySalesRow é o faturamento agregado de uma categoria de produto.
type CategorySalesRow struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// EventSalesRow é o faturamento agregado de um evento.
type EventSalesRow struct {
	Event            string  `json:"event"`
	EventDate        string  `json:"event_date,omitempty"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalQuantity    float64 `json:"total_quantity"`
	TransactionCount int     `json:"transaction_count"`
}

// BarTransaction é a projeção de exibição de uma transação recente do bar.
type BarTransaction struct {
	ID              string  `json:"id"`
	TransactionDate string  `json:"transactionDate"`
	ProductName     string  `json:"productName"`
	ProductCategory string  `json:"productCategory"`
	EventName       string  `json:"eventName"`
	Count           float64 `json:"count"`
	UnitValue       float64 `json:"unitValue"`
	DiscountValue   float64 `json:"discountValue"`
	Total           float64 `json:"total"`
}

// BarFilterOptions são as opções de filtro ainda válidas sob os demais
// filtros ativos.
type BarFilterOptions struct {
	Tipos      []string `json:"tipos"`
	Events     []string `json:"events"`
	EventDates []string `json:"event_dates"`
}

// UpcomingEvent é um evento futuro, único por (nome, data).
type UpcomingEvent struct {
	EventName string `json:"event_name"`
	EventDate string `json:"event_date"`
}

// EventRevenueRow é o faturamento líquido agregado de um evento nas vendas de
// ingresso.
type EventRevenueRow struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Quantity float64 `json:"quantity"`
}

// TicketSalesMetrics são as métricas principais de vendas de ingresso.
type TicketSalesMetrics struct {
	TotalVendas    int     `json:"total_vendas"`
	TotalIngressos float64 `json:"total_ingressos"`
	TotalReceita   float64 `json:"total_receita"`
	TicketMedio    float64 `json:"ticket_medio"`
}

// ChannelSalesRow é o faturamento agregado de um canal de venda (ticketeira).
type ChannelSalesRow struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Quantity float64 `json:"quantity"`
}

// TicketTypeSalesRow é o faturamento agregado de uma categoria canônica de
// ingresso, somando todos os rótulos que normalizam para ela.
type TicketTypeSalesRow struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Quantity float64 `json:"quantity"`
}

// CitySalesRow é o faturamento agregado de uma cidade.
type CitySalesRow struct {
	Name     string  `json:"name"`
	Value    float64 `json:"value"`
	Quantity float64 `json:"quantity"`
}

// RecentSale é a projeção de exibição de uma venda de ingresso recente.
type RecentSale struct {
	ID            string  `json:"id"`
	Evento        string  `json:"evento"`
	Tipo          string  `json:"tipo"`
	Ticketeira    string  `json:"ticketeira"`
	Quantidade    float64 `json:"quantidade"`
	ValorUnitario float64 `json:"valor_unitario"`
	ValorLiquido  float64 `json:"valor_liquido"`
	Status        string  `json:"status"`
}

// TicketFilterOptions são as opções de filtro de vendas de ingresso sob os
// demais filtros ativos.
type TicketFilterOptions struct {
	Cidades     []string `json:"cidades"`
	Eventos     []string `json:"eventos"`
	Bases       []string `json:"bases"`
	Ticketeiras []string `json:"ticketeiras"`
	DatasEvento []string `json:"datas_evento"`
}

// PlanningStats são as estatísticas consolidadas do planejamento de eventos.
type PlanningStats struct {
	TotalEventos           int     `json:"total_eventos"`
	PublicoTotalEstimado   float64 `json:"publico_total_estimado"`
	PublicoTotalValidado   float64 `json:"publico_total_validado"`
	IngressosEmitidosTotal float64 `json:"ingressos_emitidos_total"`
	TotalCidades           int     `json:"total_cidades"`
	TotalBases             int     `json:"total_bases"`
}

// PlanningCityRow agrega o planejamento por cidade do evento.
type PlanningCityRow struct {
	Cidade            string  `json:"cidade"`
	TotalEventos      int     `json:"total_eventos"`
	PublicoTotal      float64 `json:"publico_total"`
	IngressosEmitidos float64 `json:"ingressos_emitidos"`
}

// PlanningActivityRow agrega o planejamento por tipo de atividade.
type PlanningActivityRow struct {
	TipoEvento         string  `json:"tipo_evento"`
	TotalEventos       int     `json:"total_eventos"`
	PublicoTotal       float64 `json:"publico_total"`
	IngressosValidados float64 `json:"ingressos_validados"`
}

// DashboardBarStats é o recorte do bar exibido no painel combinado.
type DashboardBarStats struct {
	TotalTransactions int     `json:"total_transactions"`
	TotalRevenue      float64 `json:"total_revenue"`
	UniqueProducts    int     `json:"unique_products"`
	UniqueEvents      int     `json:"unique_events"`
}

// DashboardTicketStats é o recorte de vendas exibido no painel combinado.
type DashboardTicketStats struct {
	TotalSales        int     `json:"total_sales"`
	TotalTickets      float64 `json:"total_tickets"`
	TotalNet          float64 `json:"total_net"`
	UniqueEvents      int     `json:"unique_events"`
	UniqueTicketeiras int     `json:"unique_ticketeiras"`
}

// DashboardSummary combina os três datasets em uma única resposta.
type DashboardSummary struct {
	Bar          DashboardBarStats    `json:"bar"`
	Vendas       DashboardTicketStats `json:"vendas"`
	Planejamento PlanningStats        `json:"planejamento"`
	Summary      DashboardTotals      `json:"summary"`
}

// DashboardTotals são os totais de topo do painel.
type DashboardTotals struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalEvents  int     `json:"total_events"`
}

// SourceCacheInfo descreve o estado da tabela materializada de uma fonte.
type SourceCacheInfo struct {
	Status   string `json:"status"`
	RowCount int    `json:"row_count,omitempty"`
	LoadedAt string `json:"loaded_at,omitempty"`
}

// ReloadResult é a resposta dos endpoints de invalidação de cache.
type ReloadResult struct {
	Status         string `json:"status"`
	Dataset        string `json:"dataset"`
	EntriesCleared int    `json:"entries_cleared"`
}

// HealthStatus é a resposta do healthcheck.
type HealthStatus struct {
	Status   string          `json:"status"`
	Source   string          `json:"source"`
	Datasets map[string]bool `json:"datasets"`
}
