package aggregating

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/grupo-onda/dashboard-api/infrastructure/datasource"
	"github.com/grupo-onda/dashboard-api/internal/domain"
	"github.com/grupo-onda/dashboard-api/pkg/cache"
	"github.com/grupo-onda/dashboard-api/pkg/log"
	"github.com/grupo-onda/dashboard-api/pkg/utils"
)

// TTLs por família de endpoint. Métricas e opções de filtro mudam devagar;
// listagens cruas e agrupamentos um pouco mais rápido.
const (
	metricsTTL   = 15 * time.Minute
	filtersTTL   = 15 * time.Minute
	groupTTL     = 10 * time.Minute
	rawTTL       = 10 * time.Minute
	planningTTL  = 15 * time.Minute
	dashboardTTL = 10 * time.Minute
	upcomingTTL  = 30 * time.Minute
	sheetTTL     = 30 * time.Minute
)

// Limite de valores distintos por opção de filtro
const maxFilterOptions = 1000

// Service computa os agregados do dashboard sobre as linhas carregadas da
// fonte. Uma única implementação de agrupamento serve todas as variantes de
// backend; a fonte só recebe filtros, ordenação e paginação.
type Service struct {
	source datasource.DataSource
	sheets SheetFetcher
	cache  *cache.Cache
}

// NewService cria o serviço de agregação do dashboard
func NewService(source datasource.DataSource, sheets SheetFetcher, c *cache.Cache) Aggregator {
	return &Service{
		source: source,
		sheets: sheets,
		cache:  c,
	}
}

// cacheKey é a chave canônica de uma resposta: dataset, endpoint e a forma
// canônica dos filtros, independente da ordem de chegada dos parâmetros.
func cacheKey(dataset, endpoint string, filters domain.FilterSet) string {
	return dataset + ":" + endpoint + ":" + filters.Canonical()
}

// cached consulta o cache antes de computar e armazena o resultado no retorno.
// Misses concorrentes da mesma chave podem recomputar; o último write vence.
func cached[T any](s *Service, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	if v, ok := s.cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	value, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}

	s.cache.Set(key, value, ttl)
	return value, nil
}

func (s *Service) load(ctx context.Context, dataset string, filters domain.FilterSet) ([]domain.Record, error) {
	return s.source.Load(ctx, dataset, datasource.QueryOptions{Filters: filters})
}

// numeric lê o campo como número, aceitando formatos brasileiros ("1.234,56",
// "10%") quando o valor vem como texto.
func numeric(rec domain.Record, key string) float64 {
	if rec.IsNull(key) {
		return 0
	}
	if s, ok := rec[key].(string); ok {
		return utils.ParseFormattedNumber(s)
	}
	return rec.Float(key)
}

// ---------------------------------------------------------------------------
// Bar (bar_zig)
// ---------------------------------------------------------------------------

// barCount retorna a quantidade da transação; ausente ou zero conta como 1.
func barCount(rec domain.Record) float64 {
	if c := rec.Float("count"); c > 0 {
		return c
	}
	return 1
}

// barRevenue é a receita da transação em reais. Os valores do bar chegam em
// centavos; a divisão por 100 acontece aqui e em nenhum outro lugar.
func barRevenue(rec domain.Record) float64 {
	return (rec.Float("unitValue")*barCount(rec) - rec.Float("discountValue")) / 100
}

func (s *Service) BarRows(ctx context.Context, filters domain.FilterSet, limit, offset int) ([]domain.Record, error) {
	key := cacheKey(datasource.DatasetBar, "rows", filters.With("_limit", strconv.Itoa(limit)).With("_offset", strconv.Itoa(offset)))
	return cached(s, key, rawTTL, func() ([]domain.Record, error) {
		return s.source.Load(ctx, datasource.DatasetBar, datasource.QueryOptions{
			Filters: filters,
			Limit:   limit,
			Offset:  offset,
		})
	})
}

func (s *Service) BarMetrics(ctx context.Context, filters domain.FilterSet) (domain.BarMetrics, error) {
	key := cacheKey(datasource.DatasetBar, "metrics", filters)
	return cached(s, key, metricsTTL, func() (domain.BarMetrics, error) {
		rows, err := s.load(ctx, datasource.DatasetBar, filters)
		if err != nil {
			return domain.BarMetrics{}, err
		}

		metrics := domain.BarMetrics{TotalTransactions: len(rows)}
		for _, rec := range rows {
			metrics.TotalRevenue += barRevenue(rec)
			metrics.TotalProductsSold += barCount(rec)
		}
		if metrics.TotalTransactions > 0 {
			metrics.AvgTicket = metrics.TotalRevenue / float64(metrics.TotalTransactions)
		}
		return metrics, nil
	})
}

func (s *Service) BarSalesByDate(ctx context.Context, filters domain.FilterSet) ([]domain.SalesByDateRow, error) {
	key := cacheKey(datasource.DatasetBar, "sales-by-date", filters)
	return cached(s, key, groupTTL, func() ([]domain.SalesByDateRow, error) {
		rows, err := s.load(ctx, datasource.DatasetBar, filters)
		if err != nil {
			return nil, err
		}

		g := newGrouper[string, domain.SalesByDateRow]()
		for _, rec := range rows {
			date, ok := rec.Date("transactionDate")
			if !ok {
				continue
			}
			bucket := g.at(date, func() *domain.SalesByDateRow {
				return &domain.SalesByDateRow{Date: date}
			})
			bucket.Revenue += barRevenue(rec)
			bucket.Count += barCount(rec)
		}

		result := g.values()
		sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
		return deref(result), nil
	})
}

func (s *Service) BarTopProducts(ctx context.Context, filters domain.FilterSet, limit int) ([]domain.ProductSalesRow, error) {
	key := cacheKey(datasource.DatasetBar, "top-products", filters.With("_limit", strconv.Itoa(limit)))
	return cached(s, key, groupTTL, func() ([]domain.ProductSalesRow, error) {
		rows, err := s.load(ctx, datasource.DatasetBar, filters)
		if err != nil {
			return nil, err
		}

		g := newGrouper[string, domain.ProductSalesRow]()
		for _, rec := range rows {
			name := rec.String("productName")
			if name == "" {
				continue
			}
			bucket := g.at(name, func() *domain.ProductSalesRow {
				return &domain.ProductSalesRow{Name: name}
			})
			bucket.Revenue += barRevenue(rec)
			bucket.Quantity += barCount(rec)
		}

		result := g.values()
		sortByDesc(result, func(r *domain.ProductSalesRow) float64 { return r.Revenue })
		return deref(topN(result, limit)), nil
	})
}

func (s *Service) BarByCategory(ctx context.Context, filters domain.FilterSet) ([]domain.CategorySalesRow, error) {
	key := cacheKey(datasource.DatasetBar, "by-category", filters)
	return cached(s, key, groupTTL, func() ([]domain.CategorySalesRow, error) {
		rows, err := s.load(ctx, datasource.DatasetBar, filters)
		if err != nil {
			return nil, err
		}

		g := newGrouper[string, domain.CategorySalesRow]()
		for _, rec := range rows {
			name := rec.String("productCategory")
			if name == "" {
				name = "Sem categoria"
			}
			bucket := g.at(name, func() *domain.CategorySalesRow {
				return &domain.CategorySalesRow{Name: name}
			})
			bucket.Revenue += barRevenue(rec)
		}

		result := g.values()
		sortByDesc(result, func(r *domain.CategorySalesRow) float64 { return r.Revenue })
		return deref(result), nil
	})
}

func (s *Service) BarByEvent(ctx context.Context, filters domain.FilterSet) ([]domain.EventSalesRow, error) {
	key := cacheKey(datasource.DatasetBar, "by-event", filters)
	return cached(s, key, groupTTL, func() ([]domain.EventSalesRow, error) {
		rows, err := s.load(ctx, datasource.DatasetBar, filters)
		if err != nil {
			return nil, err
		}

		g := newGrouper[[2]string, domain.EventSalesRow]()
		for _, rec := range rows {
			event := rec.String("eventName")
			if event == "" {
				continue
			}
			date, _ := rec.Date("eventDate")
			bucket := g.at([2]string{event, date}, func() *domain.EventSalesRow {
				return &domain.EventSalesRow{Event: event, EventDate: date}
			})
			bucket.TotalRevenue += barRevenue(rec)
			bucket.TotalQuantity += barCount(rec)
			bucket.TransactionCount++
		}

		result := g.values()
		sortByDesc(result, func(r *domain.EventSalesRow) float64 { return r.TotalRevenue })
		return deref(result), nil
	})
}

func (s *Service) BarRecentTransactions(ctx context.Context, filters domain.FilterSet, limit int) ([]domain.BarTransaction, error) {
	key := cacheKey(datasource.DatasetBar, "recent-transactions", filters.With("_limit", strconv.Itoa(limit)))
	return cached(s, key, groupTTL, func() ([]domain.BarTransaction, error) {
		rows, err := s.source.Load(ctx, datasource.DatasetBar, datasource.QueryOptions{
			Filters: filters,
			Limit:   limit,
		})
		if err != nil {
			return nil, err
		}

		result := make([]domain.BarTransaction, 0, len(rows))
		for _, rec := range rows {
			transactionDate := rec.String("transactionDate")
			if t, ok := rec.Time("transactionDate"); ok {
				transactionDate = t.Format("2006-01-02T15:04:05")
			}
			count := barCount(rec)
			result = append(result, domain.BarTransaction{
				ID:              rec.String("transactionId"),
				TransactionDate: transactionDate,
				ProductName:     rec.String("productName"),
				ProductCategory: rec.String("productCategory"),
				EventName:       rec.String("eventName"),
				Count:           count,
				UnitValue:       rec.Float("unitValue") / 100,
				DiscountValue:   rec.Float("discountValue") / 100,
				Total:           barRevenue(rec),
			})
		}
		return result, nil
	})
}

func (s *Service) BarFilterOptions(ctx context.Context, filters domain.FilterSet) (domain.BarFilterOptions, error) {
	key := cacheKey(datasource.DatasetBar, "filters", filters)
	return cached(s, key, filtersTTL, func() (domain.BarFilterOptions, error) {
		options := domain.BarFilterOptions{
			Tipos:      []string{},
			Events:     []string{},
			EventDates: []string{},
		}

		var err error
		options.Tipos, err = s.distinct(ctx, datasource.DatasetBar, filters.Without("evento_tipo"), "_evento_tipo", false, false)
		if err != nil {
			return options, err
		}
		options.Events, err = s.distinct(ctx, datasource.DatasetBar, filters.Without("event_name"), "eventName", false, false)
		if err != nil {
			return options, err
		}
		options.EventDates, err = s.distinct(ctx, datasource.DatasetBar, filters.Without("event_date"), "eventDate", true, true)
		if err != nil {
			return options, err
		}
		return options, nil
	})
}

func (s *Service) UpcomingEvents(ctx context.Context) ([]domain.UpcomingEvent, error) {
	key := cacheKey(datasource.DatasetBar, "upcoming-events", nil)
	return cached(s, key, upcomingTTL, func() ([]domain.UpcomingEvent, error) {
		rows, err := s.load(ctx, datasource.DatasetBar, nil)
		if err != nil {
			return nil, err
		}

		today := time.Now().Format(time.DateOnly)
		seen := make(map[[2]string]bool)
		events := make([]domain.UpcomingEvent, 0)
		for _, rec := range rows {
			name := rec.String("eventName")
			date, ok := rec.Date("eventDate")
			if name == "" || !ok || date < today {
				continue
			}
			dedupe := [2]string{name, date}
			if seen[dedupe] {
				continue
			}
			seen[dedupe] = true
			events = append(events, domain.UpcomingEvent{EventName: name, EventDate: date})
		}

		sort.Slice(events, func(i, j int) bool {
			if events[i].EventDate != events[j].EventDate {
				return events[i].EventDate < events[j].EventDate
			}
			return events[i].EventName < events[j].EventName
		})
		if len(events) > 20 {
			events = events[:20]
		}
		return events, nil
	})
}

// ---------------------------------------------------------------------------
// Vendas de ingresso (vendas_ingresso)
// ---------------------------------------------------------------------------

func (s *Service) TicketRows(ctx context.Context, filters domain.FilterSet, limit, offset int) ([]domain.Record, error) {
	key := cacheKey(datasource.DatasetVendas, "rows", filters.With("_limit", strconv.Itoa(limit)).With("_offset", strconv.Itoa(offset)))
	return cached(s, key, rawTTL, func() ([]domain.Record, error) {
		return s.source.Load(ctx, datasource.DatasetVendas, datasource.QueryOptions{
			Filters: filters,
			Limit:   limit,
			Offset:  offset,
		})
	})
}

func (s *Service) TicketMetrics(ctx context.Context, filters domain.FilterSet) (domain.TicketSalesMetrics, error) {
	key := cacheKey(datasource.DatasetVendas, "metrics", filters)
	return cached(s, key, metricsTTL, func() (domain.TicketSalesMetrics, error) {
		rows, err := s.load(ctx, datasource.DatasetVendas, filters)
		if err != nil {
			return domain.TicketSalesMetrics{}, err
		}

		metrics := domain.TicketSalesMetrics{TotalVendas: len(rows)}
		for _, rec := range rows {
			metrics.TotalIngressos += numeric(rec, "quantidade")
			metrics.TotalReceita += numeric(rec, "valor_liquido")
		}
		if metrics.TotalIngressos > 0 {
			metrics.TicketMedio = metrics.TotalReceita / metrics.TotalIngressos
		}
		return metrics, nil
	})
}

func (s *Service) TicketByEvent(ctx context.Context, filters domain.FilterSet, limit int) ([]domain.EventRevenueRow, error) {
	key := cacheKey(datasource.DatasetVendas, "by-event", filters.With("_limit", strconv.Itoa(limit)))
	return cached(s, key, groupTTL, func() ([]domain.EventRevenueRow, error) {
		rows, err := s.load(ctx, datasource.DatasetVendas, filters)
		if err != nil {
			return nil, err
		}

		g := newGrouper[string, domain.EventRevenueRow]()
		for _, rec := range rows {
			name := rec.String("evento")
			if name == "" {
				continue
			}
			bucket := g.at(name, func() *domain.EventRevenueRow {
				return &domain.EventRevenueRow{Name: name}
			})
			bucket.Value += numeric(rec, "valor_liquido")
			bucket.Quantity += numeric(rec, "quantidade")
		}

		result := g.values()
		sortByDesc(result, func(r *domain.EventRevenueRow) float64 { return r.Value })
		return deref(topN(result, limit)), nil
	})
}

func (s *Service) TicketByChannel(ctx context.Context, filters domain.FilterSet) ([]domain.ChannelSalesRow, error) {
	key := cacheKey(datasource.DatasetVendas, "by-channel", filters)
	return cached(s, key, groupTTL, func() ([]domain.ChannelSalesRow, error) {
		rows, err := s.load(ctx, datasource.DatasetVendas, filters)
		if err != nil {
			return nil, err
		}

		g := newGrouper[string, domain.ChannelSalesRow]()
		for _, rec := range rows {
			label := rec.String("ticketeira")
			if label == "" {
				label = "Não especificado"
			}
			bucket := g.at(label, func() *domain.ChannelSalesRow {
				return &domain.ChannelSalesRow{Label: label}
			})
			bucket.Value += numeric(rec, "valor_liquido")
			bucket.Quantity += numeric(rec, "quantidade")
		}

		result := g.values()
		sortByDesc(result, func(r *domain.ChannelSalesRow) float64 { return r.Value })
		return deref(result), nil
	})
}

func (s *Service) TicketByType(ctx context.Context, filters domain.FilterSet) ([]domain.TicketTypeSalesRow, error) {
	key := cacheKey(datasource.DatasetVendas, "by-type", filters)
	return cached(s, key, groupTTL, func() ([]domain.TicketTypeSalesRow, error) {
		rows, err := s.load(ctx, datasource.DatasetVendas, filters)
		if err != nil {
			return nil, err
		}

		g := newGrouper[string, domain.TicketTypeSalesRow]()
		for _, rec := range rows {
			category := string(domain.NormalizeTicketType(rec.String("tipo")))
			bucket := g.at(category, func() *domain.TicketTypeSalesRow {
				return &domain.TicketTypeSalesRow{Name: category}
			})
			bucket.Value += numeric(rec, "valor_liquido")
			bucket.Quantity += numeric(rec, "quantidade")
		}

		result := g.values()
		sortByDesc(result, func(r *domain.TicketTypeSalesRow) float64 { return r.Value })
		return deref(result), nil
	})
}

func (s *Service) TicketByCity(ctx context.Context, filters domain.FilterSet) ([]domain.CitySalesRow, error) {
	key := cacheKey(datasource.DatasetVendas, "by-city", filters)
	return cached(s, key, groupTTL, func() ([]domain.CitySalesRow, error) {
		rows, err := s.load(ctx, datasource.DatasetVendas, filters)
		if err != nil {
			return nil, err
		}

		g := newGrouper[string, domain.CitySalesRow]()
		for _, rec := range rows {
			name := rec.String("cidade_evento")
			if name == "" {
				continue
			}
			bucket := g.at(name, func() *domain.CitySalesRow {
				return &domain.CitySalesRow{Name: name}
			})
			bucket.Value += numeric(rec, "valor_liquido")
			bucket.Quantity += numeric(rec, "quantidade")
		}

		result := g.values()
		sortByDesc(result, func(r *domain.CitySalesRow) float64 { return r.Value })
		return deref(result), nil
	})
}

func (s *Service) TicketRecentSales(ctx context.Context, filters domain.FilterSet, limit int) ([]domain.RecentSale, error) {
	key := cacheKey(datasource.DatasetVendas, "recent-sales", filters.With("_limit", strconv.Itoa(limit)))
	return cached(s, key, groupTTL, func() ([]domain.RecentSale, error) {
		rows, err := s.source.Load(ctx, datasource.DatasetVendas, datasource.QueryOptions{
			Filters: filters,
			Limit:   limit,
		})
		if err != nil {
			return nil, err
		}

		result := make([]domain.RecentSale, 0, len(rows))
		for _, rec := range rows {
			quantidade := numeric(rec, "quantidade")
			liquido := numeric(rec, "valor_liquido")
			var unitario float64
			if quantidade > 0 {
				unitario = liquido / quantidade
			}
			result = append(result, domain.RecentSale{
				ID:            rec.String("id"),
				Evento:        rec.String("evento"),
				Tipo:          rec.String("tipo"),
				Ticketeira:    rec.String("ticketeira"),
				Quantidade:    quantidade,
				ValorUnitario: unitario,
				ValorLiquido:  liquido,
				Status:        rec.String("status"),
			})
		}
		return result, nil
	})
}

func (s *Service) TicketFilterOptions(ctx context.Context, filters domain.FilterSet) (domain.TicketFilterOptions, error) {
	key := cacheKey(datasource.DatasetVendas, "filters", filters)
	return cached(s, key, filtersTTL, func() (domain.TicketFilterOptions, error) {
		options := domain.TicketFilterOptions{
			Cidades:     []string{},
			Eventos:     []string{},
			Bases:       []string{},
			Ticketeiras: []string{},
			DatasEvento: []string{},
		}

		var err error
		options.Cidades, err = s.distinct(ctx, datasource.DatasetVendas, filters.Without("cidade"), "cidade_evento", false, false)
		if err != nil {
			return options, err
		}
		options.Eventos, err = s.distinct(ctx, datasource.DatasetVendas, filters.Without("evento"), "evento", false, false)
		if err != nil {
			return options, err
		}
		options.Bases, err = s.distinct(ctx, datasource.DatasetVendas, filters.Without("base_responsavel"), "base_responsavel", false, false)
		if err != nil {
			return options, err
		}
		options.Ticketeiras, err = s.distinct(ctx, datasource.DatasetVendas, filters.Without("ticketeira"), "ticketeira", false, false)
		if err != nil {
			return options, err
		}
		options.DatasEvento, err = s.distinct(ctx, datasource.DatasetVendas, filters.Without("data_evento"), "data_evento", true, true)
		if err != nil {
			return options, err
		}
		return options, nil
	})
}

// distinct coleta os valores distintos não vazios da coluna sob os filtros
// informados, ordenados e limitados a maxFilterOptions. Colunas de data são
// projetadas para YYYY-MM-DD.
func (s *Service) distinct(ctx context.Context, dataset string, filters domain.FilterSet, column string, date, desc bool) ([]string, error) {
	rows, err := s.load(ctx, dataset, filters)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, rec := range rows {
		var value string
		if date {
			value, _ = rec.Date(column)
		} else {
			value = rec.String(column)
		}
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		values = append(values, value)
	}

	sort.Strings(values)
	if desc {
		for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
			values[i], values[j] = values[j], values[i]
		}
	}
	if len(values) > maxFilterOptions {
		values = values[:maxFilterOptions]
	}
	return values, nil
}

// ---------------------------------------------------------------------------
// Planejamento
// ---------------------------------------------------------------------------

func (s *Service) PlanningRows(ctx context.Context) ([]domain.Record, error) {
	key := cacheKey(datasource.DatasetPlanejamento, "rows", nil)
	return cached(s, key, planningTTL, func() ([]domain.Record, error) {
		rows, err := s.load(ctx, datasource.DatasetPlanejamento, nil)
		if err != nil {
			return nil, err
		}
		return projectPlanningRows(rows), nil
	})
}

func (s *Service) PlanningStats(ctx context.Context) (domain.PlanningStats, error) {
	key := cacheKey(datasource.DatasetPlanejamento, "stats", nil)
	return cached(s, key, planningTTL, func() (domain.PlanningStats, error) {
		rows, err := s.load(ctx, datasource.DatasetPlanejamento, nil)
		if err != nil {
			return domain.PlanningStats{}, err
		}

		stats := domain.PlanningStats{}
		cidades := make(map[string]bool)
		bases := make(map[string]bool)
		for _, rec := range rows {
			// Linhas sem público estimado são rascunhos e ficam de fora
			if rec.String("publico_estimado") == "" {
				continue
			}
			stats.TotalEventos++
			stats.PublicoTotalEstimado += numeric(rec, "publico_estimado")
			stats.PublicoTotalValidado += numeric(rec, "ingressos_validados")
			stats.IngressosEmitidosTotal += numeric(rec, "ingressos_emitidos")
			if cidade := rec.String("cidade_do_evento"); cidade != "" {
				cidades[cidade] = true
			}
			if base := rec.String("base"); base != "" {
				bases[base] = true
			}
		}
		stats.TotalCidades = len(cidades)
		stats.TotalBases = len(bases)
		return stats, nil
	})
}

func (s *Service) PlanningByCity(ctx context.Context) ([]domain.PlanningCityRow, error) {
	key := cacheKey(datasource.DatasetPlanejamento, "by-city", nil)
	return cached(s, key, planningTTL, func() ([]domain.PlanningCityRow, error) {
		rows, err := s.load(ctx, datasource.DatasetPlanejamento, nil)
		if err != nil {
			return nil, err
		}

		g := newGrouper[string, domain.PlanningCityRow]()
		for _, rec := range rows {
			cidade := rec.String("cidade_do_evento")
			if cidade == "" {
				continue
			}
			bucket := g.at(cidade, func() *domain.PlanningCityRow {
				return &domain.PlanningCityRow{Cidade: cidade}
			})
			bucket.TotalEventos++
			bucket.PublicoTotal += numeric(rec, "publico_estimado")
			bucket.IngressosEmitidos += numeric(rec, "ingressos_emitidos")
		}

		result := g.values()
		sortByDesc(result, func(r *domain.PlanningCityRow) float64 { return float64(r.TotalEventos) })
		return deref(result), nil
	})
}

func (s *Service) PlanningByActivity(ctx context.Context) ([]domain.PlanningActivityRow, error) {
	key := cacheKey(datasource.DatasetPlanejamento, "by-tipo", nil)
	return cached(s, key, planningTTL, func() ([]domain.PlanningActivityRow, error) {
		rows, err := s.load(ctx, datasource.DatasetPlanejamento, nil)
		if err != nil {
			return nil, err
		}

		g := newGrouper[string, domain.PlanningActivityRow]()
		for _, rec := range rows {
			tipo := rec.String("atividade")
			if tipo == "" {
				continue
			}
			bucket := g.at(tipo, func() *domain.PlanningActivityRow {
				return &domain.PlanningActivityRow{TipoEvento: tipo}
			})
			bucket.TotalEventos++
			bucket.PublicoTotal += numeric(rec, "publico_estimado")
			bucket.IngressosValidados += numeric(rec, "ingressos_validados")
		}

		result := g.values()
		sortByDesc(result, func(r *domain.PlanningActivityRow) float64 { return float64(r.TotalEventos) })
		return deref(result), nil
	})
}

// ---------------------------------------------------------------------------
// Dashboard combinado, planilha, manutenção
// ---------------------------------------------------------------------------

func (s *Service) Dashboard(ctx context.Context) (domain.DashboardSummary, error) {
	key := "dashboard:summary:"
	return cached(s, key, dashboardTTL, func() (domain.DashboardSummary, error) {
		barRows, err := s.load(ctx, datasource.DatasetBar, nil)
		if err != nil {
			return domain.DashboardSummary{}, err
		}

		bar := domain.DashboardBarStats{TotalTransactions: len(barRows)}
		products := make(map[string]bool)
		barEvents := make(map[string]bool)
		for _, rec := range barRows {
			bar.TotalRevenue += barRevenue(rec)
			if p := rec.String("productName"); p != "" {
				products[p] = true
			}
			if e := rec.String("eventName"); e != "" {
				barEvents[e] = true
			}
		}
		bar.UniqueProducts = len(products)
		bar.UniqueEvents = len(barEvents)

		vendasRows, err := s.load(ctx, datasource.DatasetVendas, nil)
		if err != nil {
			return domain.DashboardSummary{}, err
		}

		vendas := domain.DashboardTicketStats{TotalSales: len(vendasRows)}
		vendasEvents := make(map[string]bool)
		ticketeiras := make(map[string]bool)
		for _, rec := range vendasRows {
			vendas.TotalTickets += numeric(rec, "quantidade")
			vendas.TotalNet += numeric(rec, "valor_liquido")
			if e := rec.String("evento"); e != "" {
				vendasEvents[e] = true
			}
			if t := rec.String("ticketeira"); t != "" {
				ticketeiras[t] = true
			}
		}
		vendas.UniqueEvents = len(vendasEvents)
		vendas.UniqueTicketeiras = len(ticketeiras)

		planejamento, err := s.PlanningStats(ctx)
		if err != nil {
			return domain.DashboardSummary{}, err
		}

		totalEvents := bar.UniqueEvents
		if vendas.UniqueEvents > totalEvents {
			totalEvents = vendas.UniqueEvents
		}
		if planejamento.TotalEventos > totalEvents {
			totalEvents = planejamento.TotalEventos
		}

		return domain.DashboardSummary{
			Bar:          bar,
			Vendas:       vendas,
			Planejamento: planejamento,
			Summary: domain.DashboardTotals{
				TotalRevenue: bar.TotalRevenue + vendas.TotalNet,
				TotalEvents:  totalEvents,
			},
		}, nil
	})
}

func (s *Service) SheetRows(ctx context.Context) ([]domain.Record, error) {
	return cached(s, "sheets:rows:", sheetTTL, func() ([]domain.Record, error) {
		if s.sheets == nil {
			return []domain.Record{}, nil
		}
		return s.sheets.Rows(ctx), nil
	})
}

// Reload invalida as respostas cacheadas do dataset (e o resumo combinado,
// que depende de todos) e força a recarga da fonte quando ela suporta.
func (s *Service) Reload(ctx context.Context, dataset string) (domain.ReloadResult, error) {
	if _, err := datasource.Spec(dataset); err != nil {
		return domain.ReloadResult{}, err
	}

	logger := log.ForContext(ctx).WithField("dataset", dataset)

	cleared := s.cache.ClearPrefix(dataset + ":")
	cleared += s.cache.ClearPrefix("dashboard:")

	if reloader, ok := s.source.(datasource.Reloader); ok {
		if err := reloader.Reload(ctx, dataset); err != nil {
			logger.WithError(err).Warn("Erro ao recarregar a fonte do dataset")
		}
	}

	logger.WithField("entries_cleared", cleared).Info("Cache do dataset invalidado")
	return domain.ReloadResult{
		Status:         "cache_cleared",
		Dataset:        dataset,
		EntriesCleared: cleared,
	}, nil
}

// CacheInfo reporta o estado da tabela materializada do dataset. Variantes
// sem materialização (SQL) respondem como consulta direta.
func (s *Service) CacheInfo(ctx context.Context, dataset string) (domain.SourceCacheInfo, error) {
	if _, err := datasource.Spec(dataset); err != nil {
		return domain.SourceCacheInfo{}, err
	}

	if reporter, ok := s.source.(datasource.CacheReporter); ok {
		return reporter.CacheInfo(dataset), nil
	}
	return domain.SourceCacheInfo{Status: "live"}, nil
}

// Health verifica a disponibilidade da fonte dataset a dataset com uma leitura
// mínima. Qualquer dataset indisponível rebaixa o status para degraded.
func (s *Service) Health(ctx context.Context) domain.HealthStatus {
	status := domain.HealthStatus{
		Status:   "ok",
		Source:   s.source.Name(),
		Datasets: make(map[string]bool),
	}

	for _, dataset := range datasource.Datasets() {
		_, err := s.source.Load(ctx, dataset, datasource.QueryOptions{Limit: 1})
		status.Datasets[dataset] = err == nil
		if err != nil {
			status.Status = "degraded"
			log.ForContext(ctx).WithField("dataset", dataset).
				WithError(err).Warn("Dataset indisponível no healthcheck")
		}
	}
	return status
}
