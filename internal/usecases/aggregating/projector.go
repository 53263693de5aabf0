package aggregating

import (
	"github.com/grupo-onda/dashboard-api/internal/domain"
	"github.com/grupo-onda/dashboard-api/pkg/utils"
)

// planningField liga a coluna crua do planejamento ao nome de exibição do
// dashboard. Campos numéricos formatados ("R$ 1.234,56", "10%") são convertidos
// para float na projeção.
type planningField struct {
	Column  string
	Display string
	Numeric bool
}

// Tabela canônica de projeção do planejamento, na ordem de exibição.
// projecao_de_despesas é mapeado uma única vez.
var planningFields = []planningField{
	{Column: "data", Display: "Data"},
	{Column: "dia_da_semana", Display: "Dia da Semana"},
	{Column: "base", Display: "Base"},
	{Column: "atividade", Display: "Atividade"},
	{Column: "evento", Display: "Evento"},
	{Column: "status_das_atracoes", Display: "Status das Atrações"},
	{Column: "lider_do_evento", Display: "Líder do Evento"},
	{Column: "cidade_do_evento", Display: "Cidade do Evento"},
	{Column: "estado", Display: "Estado"},
	{Column: "socios_no_evento", Display: "Sócios no Evento"},
	{Column: "local_do_evento", Display: "Local do Evento"},
	{Column: "ticketeira", Display: "Ticketeira"},
	{Column: "adm_tickeira_onda", Display: "Adm Tickeira Onda"},
	{Column: "atracoes", Display: "Atrações"},
	{Column: "pct_grupo_onda", Display: "% Grupo Onda", Numeric: true},
	{Column: "meta_grupo_onda", Display: "Meta Grupo Onda", Numeric: true},
	{Column: "evento_realizado", Display: "Evento Realizado"},
	{Column: "pct_patrocinio", Display: "% Patrocínio", Numeric: true},
	{Column: "publico_estimado", Display: "Público Estimado", Numeric: true},
	{Column: "ingressos_emitidos", Display: "Ingressos Emitidos", Numeric: true},
	{Column: "ingressos_validados", Display: "Ingressos Validados", Numeric: true},
	{Column: "no_show", Display: "No Show", Numeric: true},
	{Column: "cortesias_emitidas", Display: "Cortesias Emitidas", Numeric: true},
	{Column: "ingressos_permuta", Display: "Ingressos Permuta", Numeric: true},
	{Column: "prestadores_de_servico", Display: "Prestadores de serviço"},
	{Column: "feedback_dos_clientes", Display: "Feedback dos Clientes"},
	{Column: "destaques", Display: "Destaques"},
	{Column: "quantidade_de_leads_captado", Display: "Quantidade de Leads Captado", Numeric: true},
	{Column: "engajamento", Display: "Engajamento"},
	{Column: "taxa_de_conversao", Display: "Taxa de Conversão", Numeric: true},
	{Column: "roi_marketing", Display: "ROI Marketing", Numeric: true},
	{Column: "custo_por_participante", Display: "Custo por Participante", Numeric: true},
	{Column: "projecao_de_receitas_bilheteria", Display: "Projeção de Receitas - Bilheteria", Numeric: true},
	{Column: "projecao_de_receitas_bar", Display: "Projeção de Receitas - Bar", Numeric: true},
	{Column: "projecao_de_receitas_alimentacao", Display: "Projeção de Receitas - Alimentação", Numeric: true},
	{Column: "projecao_de_receitas_patrocinios", Display: "Projeção de Receitas - Patrocínios", Numeric: true},
	{Column: "projecao_de_receitas_loja", Display: "Projeção de Receitas - Loja", Numeric: true},
	{Column: "projecao_de_receitas_outros", Display: "Projeção de Receitas - Outros", Numeric: true},
	{Column: "receitas_atuais_bilheteria", Display: "Receitas atuais - Bilheteria", Numeric: true},
	{Column: "receitas_atuais_bar", Display: "Receitas atuais - Bar", Numeric: true},
	{Column: "receitas_atuais_alimentacao", Display: "Receitas atuais - Alimentação", Numeric: true},
	{Column: "receitas_atuais_patrocinios", Display: "Receitas atuais - Patrocínios", Numeric: true},
	{Column: "receitas_atuais_loja", Display: "Receitas atuais - Loja", Numeric: true},
	{Column: "receitas_atuais_outros", Display: "Receitas atuais - Outros", Numeric: true},
	{Column: "projecao_de_despesas", Display: "Projeção de Despesas", Numeric: true},
	{Column: "despesas_atuais_artistico_logistica", Display: "Despesas atuais - Artístico e Logística", Numeric: true},
	{Column: "despesas_atuais_licenca_impostos", Display: "Despesas atuais - Licença e Impostos", Numeric: true},
	{Column: "despesas_atuais_locacao", Display: "Despesas atuais - Locação", Numeric: true},
	{Column: "despesas_atuais_projeto", Display: "Despesas atuais - Projeto", Numeric: true},
	{Column: "despesas_atuais_infraestrutura", Display: "Despesas atuais - Infraestrutura", Numeric: true},
	{Column: "despesas_atuais_cenografia_decoracao", Display: "Despesas atuais - Cenografia e Decoração", Numeric: true},
	{Column: "despesas_atuais_tecnologia", Display: "Despesas atuais - Tecnologia", Numeric: true},
	{Column: "despesas_atuais_marketing_midias_gerais", Display: "Despesas atuais - Marketing e Mídias Gerais", Numeric: true},
	{Column: "despesas_atuais_operacional", Display: "Despesas atuais - Operacional", Numeric: true},
	{Column: "despesas_atuais_aeb", Display: "Despesas atuais - AEB", Numeric: true},
	{Column: "despesas_atuais_diversos", Display: "Despesas atuais - Diversos", Numeric: true},
	{Column: "projecao_de_receitas_valor_total", Display: "Projeção de Receitas - Valor Total", Numeric: true},
	{Column: "projecao_margem_de_lucro", Display: "Projeção - Margem de Lucro", Numeric: true},
	{Column: "receitas_atuais_valor_total", Display: "Receitas atuais - Valor Total", Numeric: true},
	{Column: "despesa_total", Display: "Despesa Total", Numeric: true},
	{Column: "lucro_receitas_atuais_despesas_atuais", Display: "Lucro (Receitas atuais - Despesas atuais)", Numeric: true},
	{Column: "ticket_medio_bilheteria_e_aeb", Display: "Ticket Médio (Bilheteria e AEB)", Numeric: true},
	{Column: "gap_diferenca_entre_previsao_e_real", Display: "GAP (Diferença entre previsão e real)", Numeric: true},
	{Column: "roi_lucro_receita", Display: "ROI (Lucro / Receita)", Numeric: true},
	{Column: "resultado_grupo_onda", Display: "Resultado Grupo Onda", Numeric: true},
	{Column: "resultado_socio_local_label", Display: "Resultado Sócio Local Label"},
	{Column: "resultado_socio_dono_label", Display: "Resultado Sócio Dono Label"},
	{Column: "meta_atingida", Display: "Meta Atingida"},
	{Column: "links_planilhas", Display: "Links Planilhas"},
	{Column: "qual_zig", Display: "Qual ZIG"},
	{Column: "detalhamento_aeb_no_drive", Display: "Detalhamento AEB no Drive"},
	{Column: "roi", Display: "ROI", Numeric: true},
}

// projectPlanningRow renomeia os campos crus do planejamento para o esquema de
// exibição, contendo apenas os campos mapeados. Valores numéricos formatados
// como texto são convertidos; qualquer outro valor é preservado.
func projectPlanningRow(rec domain.Record) domain.Record {
	out := make(domain.Record, len(planningFields))
	for _, f := range planningFields {
		value, ok := rec[f.Column]
		if !ok {
			continue
		}
		if f.Numeric {
			if s, isStr := value.(string); isStr {
				value = utils.ParseFormattedNumber(s)
			}
		}
		out[f.Display] = value
	}
	return out
}

func projectPlanningRows(rows []domain.Record) []domain.Record {
	out := make([]domain.Record, 0, len(rows))
	for _, rec := range rows {
		out = append(out, projectPlanningRow(rec))
	}
	return out
}
