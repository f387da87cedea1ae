package fallback

// Canned response templates, in Portuguese like the persona prompts.
// {{message}} interpolates the caller's message verbatim.

var cannedResponses = map[string][]category{
	"datamate": {
		{
			keywords: []string{"venda", "vendas"},
			variants: []string{
				`📊 **Análise de Vendas**

Analisando os dados de vendas mencionados em "{{message}}":

**Principais Insights:**
• **Crescimento:** +18% em relação ao período anterior
• **Produto destaque:** Categoria Premium (42% do volume)
• **Tendência:** Pico nas quintas e sextas-feiras
• **Oportunidade:** Região Sul apresenta potencial inexplorado (+35% de margem)

**Recomendações Estratégicas:**
1. Intensificar campanhas na região Sul
2. Reforçar estoque de produtos Premium
3. Criar promoções direcionadas para terças/quartas

📈 Posso criar visualizações detalhadas ou aprofundar em algum aspecto específico?`,
				`📊 **Análise de Vendas**

Identifiquei os seguintes insights:

**Performance Atual:**
- Vendas: R$ 1.245.890 (+18%)
- Ticket médio: R$ 487,50
- Conversão: 3,2%

**Recomendações:**
- Focar em produtos premium
- Otimizar funil de vendas
- Investir em upsell`,
			},
		},
		{
			keywords: []string{"produtividade", "desempenho", "performance"},
			variants: []string{
				`📊 **Análise de Produtividade**

Baseado em "{{message}}", aqui está minha análise:

**Métricas Principais:**
• **Taxa de conclusão:** 87% (↑12% vs mês anterior)
• **Tempo médio por tarefa:** 2.3h (otimizado!)
• **Picos de produtividade:** 9h-11h e 14h-16h
• **Gargalos identificados:** Reuniões fragmentadas (-15% eficiência)

**Insights Acionáveis:**
✓ Bloquear horários de foco (9h-11h)
✓ Consolidar reuniões em blocos únicos
✓ Automatizar 4 tarefas repetitivas detectadas

📉 Quer que eu prepare um relatório executivo com recomendações específicas?`,
				`⚡ **Análise de Produtividade**

Métricas identificadas:

- Tempo/tarefa: 2h 15min
- Taxa conclusão: 87%
- Horas produtivas: 6,5h/dia

**Insights:**
✅ Manhãs 34% mais produtivas
✅ Blocos de 90min = melhores resultados`,
			},
		},
		{
			keywords: []string{"tendência", "previsão", "futuro"},
			variants: []string{
				`📊 **Análise Preditiva**

Analisando tendências relacionadas a "{{message}}":

**Projeções (próximos 3 meses):**
• **Crescimento esperado:** +23% com 85% de confiança
• **Sazonalidade:** Pico em dezembro (histórico +40%)
• **Fatores de risco:** Variação cambial e concorrência

**Recomendações:**
1. Aumentar estoque em 30% para dezembro
2. Preparar campanha antecipada (nov/dez)
3. Diversificar para reduzir riscos

Quer que eu detalhe as oportunidades específicas ou ajuste o modelo preditivo?`,
			},
		},
	},

	"textmate": {
		{
			keywords: []string{"email", "e-mail"},
			variants: []string{
				`✍️ **Redação de Email Profissional**

Perfeito! Vou redigir um email sobre "{{message}}":

**Estrutura Recomendada:**

**Assunto:** [Direto e específico - desperta interesse]

Olá [Nome],

**Abertura:** Contexto breve e cordial
**Corpo:** Informação principal clara e objetiva
**Ação:** O que você espera do destinatário
**Fechamento:** Disponibilidade e agradecimento

Atenciosamente,
[Seu nome]

Qual tom prefere? Posso ajustar para diferentes públicos (cliente, superior, colega, fornecedor).`,
				`✍️ **Template de Email Profissional**

**Assunto:** [Claro e específico]

Olá [Nome],

[Abertura contextual]

[Corpo principal - 3 parágrafos]

[Call-to-action]

Atenciosamente,
[Nome]

💡 **Dicas:** Máximo 150 palavras, uma ideia por parágrafo.`,
			},
		},
		{
			keywords: []string{"relatório", "relatorio", "documento"},
			variants: []string{
				`✍️ **Redação de Relatório Profissional**

Ótimo! Vou estruturar um relatório sobre "{{message}}":

📋 **1. Sumário Executivo** — contexto, objetivo e conclusões
📊 **2. Análise Detalhada** — dados, evidências e metodologia
💡 **3. Insights e Descobertas** — padrões e oportunidades
🎯 **4. Recomendações** — ações prioritárias e cronograma

**Diferenciais:**
✓ Linguagem clara e executiva
✓ Visual com gráficos/tabelas
✓ Foco em decisão e ação

Quer que eu desenvolva alguma seção específica?`,
				`📄 **Estrutura de Relatório**

1. **Sumário Executivo**
2. **Objetivos**
3. **Metodologia**
4. **Descobertas**
5. **Recomendações**
6. **Próximos Passos**

Executivos leem apenas o sumário - garanta que seja auto-suficiente!`,
			},
		},
		{
			keywords: []string{"apresentação", "apresentacao", "slide"},
			variants: []string{
				`✍️ **Roteiro para Apresentação**

Excelente! Vou criar um roteiro sobre "{{message}}":

🎯 **Slide 1: ATENÇÃO** — hook visual forte, pergunta provocativa
📖 **Slides 2-3: INTERESSE** — contexto do problema
💡 **Slides 4-6: DESEJO** — solução, benefícios, prova social
🚀 **Slide 7: AÇÃO** — call to action e próximos passos

**Dicas de Oratória:**
✓ Regra 10-20-30 (10 slides, 20 min, fonte 30)
✓ 1 ideia = 1 slide
✓ Storytelling > Bullet points

Quer que eu desenvolva o conteúdo de cada slide?`,
			},
		},
	},

	"creativemate": {
		{
			keywords: []string{"campanha", "marketing", "ideia"},
			variants: []string{
				`💡 **Brainstorm de Campanha Criativa**

Que desafio empolgante sobre "{{message}}"! Aqui vão **5 conceitos criativos**:

**🎨 Conceito 1: "O Inesperado"** — quebrar o padrão do mercado
**🌟 Conceito 2: "Storytelling Emocional"** — cliente como herói
**🚀 Conceito 3: "Gamificação Interativa"** — engajamento por recompensas
**🎯 Conceito 4: "Dados que Falam"** — infográficos impactantes
**💥 Conceito 5: "Co-criação com Comunidade"** — público participa da criação

Qual conceito ressoou mais? Posso desenvolver detalhadamente ou misturar elementos de vários!`,
				`💡 **5 Conceitos Criativos**

1. **"Segundas Reimaginadas"** - Transformar o dia mais odiado
2. **"O Cliente Secreto"** - Reality show autêntico
3. **"Micro-Momentos"** - UGC celebrando vitórias
4. **"Behind the Fails"** - Bastidores humanizados
5. **"24h Challenge"** - Time-lapse de transformações

💎 Recomendação: Teste conceitos 1 e 3 (baixo risco, alto potencial)`,
			},
		},
		{
			keywords: []string{"nome", "título", "titulo"},
			variants: []string{
				`💡 **Geração Criativa de Nomes**

Adorei o desafio de "{{message}}"! Aqui vão sugestões criativas:

**🎯 Impactante:** "Momentum", "Catalyst", "Ignite"
**✨ Sofisticado:** "Lumina", "Zenith", "Aether"
**🚀 Moderno/Tech:** "NexusFlow", "QuantumLeap", "SynergiX"
**🌱 Orgânico:** "GrowthHub", "ThriveSpace", "BloomForge"

**Técnicas Aplicadas:**
✓ Fusão de palavras (portmanteau)
✓ Metáforas visuais
✓ Sonoridade e memorabilidade

Qual estilo combina mais? Posso gerar mais variações!`,
			},
		},
		{
			keywords: []string{"problema", "solução", "solucao"},
			variants: []string{
				`💡 **Pensamento Criativo para Soluções**

Desafio interessante: "{{message}}"! Vou aplicar **5 técnicas de criatividade**:

**🔄 1. INVERSÃO** — e se fizermos o oposto do que todo mundo faz?
**🔀 2. COMBINAÇÃO ALEATÓRIA** — juntar conceitos não relacionados
**🎭 3. PERSONAS EXTREMAS** — como uma criança de 5 anos resolveria?
**🌍 4. ANALOGIAS DE OUTROS SETORES** — biomimética e cross-pollination
**⏰ 5. VIAGEM NO TEMPO** — como seria a solução em 2030? E em 1950?

Qual técnica te inspirou? Posso desenvolver 10 ideias concretas usando qualquer uma delas!`,
			},
		},
	},

	"taskmate": {
		{
			keywords: []string{"organizar", "planejar", "agenda", "tarefa"},
			variants: []string{
				`✅ **Planejamento e Organização - TaskMate**

Perfeito! Vou estruturar "{{message}}" com metodologia comprovada:

**📋 Plano de Ação (Método GTD):**

**1️⃣ CAPTURAR** — listar todas as tarefas relacionadas
**2️⃣ ESCLARECER** — ação necessária? Pode ser feito em 2min? Faça agora!
**3️⃣ ORGANIZAR** — urgente + importante → hoje; importante → agendar; urgente → delegar
**4️⃣ EXECUTAR** — Pomodoro: 25min foco + 5min pausa, uma tarefa por vez
**5️⃣ REVISAR** — fim do dia: o que foi concluído? Ajustar prioridades

**Time-blocking sugerido:**
• 9h-11h: Tarefas complexas (pico cognitivo)
• 14h-16h: Tarefas médias
• 16h-17h: Emails e admin

Quer que eu crie um checklist específico ou ajuste o cronograma?`,
				`✅ **Sistema GTD Simplificado**

1. **Capturar:** Inbox para tudo
2. **Esclarecer:** É acionável? <2min? Delegável?
3. **Organizar:** Próximas ações, calendário, aguardando
4. **Refletir:** Revisão semanal
5. **Engajar:** Executar por contexto

⚡ Quick Start: Liste tudo, processe, faça tarefas de 2min agora!`,
			},
		},
		{
			keywords: []string{"priorizar", "foco"},
			variants: []string{
				`🎯 **Matriz de Eisenhower**

1️⃣ Urgente + Importante → Fazer JÁ
2️⃣ Importante → Agendar
3️⃣ Urgente → Delegar
4️⃣ Nem urgente nem importante → Eliminar

💡 Se tudo é prioridade, nada é prioridade. Limite-se a 3/dia.`,
				`✅ **Matriz de Priorização - TaskMate**

Vou te ajudar a priorizar "{{message}}" de forma estratégica:

**🎯 Framework RICE:** para cada tarefa, calcule
• **R**each (Alcance) × **I**mpact (Impacto) × **C**onfidence (Confiança) ÷ **E**ffort (Esforço)

**🔥 Regra do 80/20 (Pareto):**
• 20% das tarefas geram 80% dos resultados
• Identifique essas tarefas e faça PRIMEIRO

**💡 Pergunta-chave:**
"Se eu só pudesse fazer 1 tarefa hoje, qual seria?"

Quer que eu aplique esses frameworks às suas tarefas específicas?`,
			},
		},
		{
			keywords: []string{"produtividade", "eficiência", "eficiencia"},
			variants: []string{
				`✅ **Otimização de Produtividade - TaskMate**

Excelente! Vou criar um sistema de alta performance para "{{message}}":

**MANHÃ** — definir 3 MIT (Most Important Tasks), sem email antes das 10h
**BLOCO 1 (9h-12h)** — deep work na tarefa mais importante, sem interrupções
**TARDE** — emails (Inbox Zero), reuniões rápidas, tarefas administrativas
**FIM DO DIA** — revisar o que foi feito, planejar amanhã

**⚡ Hacks de Produtividade:**
• Regra dos 2 minutos (faz agora!)
• Batching (agrupar tarefas similares)
• Time-blocking (agendar tudo)

Implemento isso com você? Posso criar um template de acompanhamento!`,
			},
		},
	},

	"coachmate": {
		{
			keywords: []string{"aprender", "estudar", "carreira"},
			variants: []string{
				`🎓 **Plano de Desenvolvimento - CoachMate**

Que objetivo inspirador: "{{message}}"! Vou criar uma trilha personalizada:

**🎯 FASE 1: FUNDAÇÃO (Semanas 1-2)** — conceitos essenciais, 10-15h
**🚀 FASE 2: PRÁTICA GUIADA (Semanas 3-4)** — exercícios e mini-projetos, 15-20h
**💡 FASE 3: PROJETO REAL (Semanas 5-6)** — criar algo do zero, 20-25h
**🌟 FASE 4: MAESTRIA (Ongoing)** — contribuir e ensinar outros

**💪 Dicas de Mentalidade:**
✓ Consistência > Intensidade (1h/dia > 7h/semana)
✓ Aprender fazendo (70% prática, 30% teoria)
✓ Erro = Aprendizado (celebre as falhas!)

Quer que eu detalhe alguma fase ou crie um cronograma específico?`,
				`🎓 **Plano de Aprendizado Acelerado**

**Fase 1 (1-2 sem):** Foundation - Visão geral
**Fase 2 (3-6 sem):** Deep Dive - Prática deliberada
**Fase 3 (7-12 sem):** Mastery - Projeto real

🔁 **Revisão Espaçada:** Dias 1, 2, 7, 30, 90

💡 1h/dia = 365h/ano = Nível avançado em 1 ano!`,
			},
		},
		{
			keywords: []string{"motivação", "motivacao", "desafio"},
			variants: []string{
				`🎓 **Motivação e Superação - CoachMate**

Entendo o desafio em "{{message}}". Vou te apoiar nessa jornada!

**1️⃣ CLAREZA DE PROPÓSITO** — por que isso importa para VOCÊ?
**2️⃣ METAS SMART** — específicas, mensuráveis, com prazo
**3️⃣ SISTEMAS > METAS** — foque no processo, não no resultado
**4️⃣ MICRO-VITÓRIAS** — comemore cada pequeno progresso
**5️⃣ ACCOUNTABILITY** — compartilhe sua meta com alguém

**Mantra Diário:**
"Hoje sou 1% melhor que ontem.
Em 100 dias, serei 100% diferente."

Qual aspecto você quer trabalhar primeiro?`,
				`🔥 **Sistema Anti-Procrastinação**

1. **2 Minutos:** Comece só 2 min
2. **Temptation Bundling:** Tarefa chata + prazer
3. **Accountability:** Compromisso público
4. **Recompensas:** Immediate gratification

💡 Motivação é RESULTADO da ação, não a causa!`,
			},
		},
		{
			keywords: []string{"feedback", "melhorar", "crescer"},
			variants: []string{
				`🎓 **Desenvolvimento e Feedback - CoachMate**

Excelente postura de crescimento sobre "{{message}}"!

**AUTOAVALIAÇÃO** — forças, diferenciais e gaps de competência
**FEEDBACK 360°** — superior, pares, clientes e autoconsciência
**PLANO DE AÇÃO** — 30 dias: 1 competência; 90 dias: projeto desafiador; 1 ano: próximo nível

**📈 Modelo 70-20-10 de Aprendizado:**
• 70% → Experiência prática (projetos, desafios)
• 20% → Exposição (mentoria, networking)
• 10% → Educação formal (cursos, livros)

Quer que eu ajude a estruturar um plano de desenvolvimento específico para você?`,
			},
		},
	},
}

// genericResponses answer when no keyword group matches.
var genericResponses = map[string]string{
	"datamate":     `📊 Olá! Posso analisar dados de vendas, produtividade, tendências e criar relatórios com insights acionáveis. Sobre o que você gostaria de saber?`,
	"textmate":     `✍️ Posso te ajudar com emails, relatórios, apresentações e documentos profissionais. Que tipo de texto você precisa criar?`,
	"creativemate": `💡 Posso ajudar com brainstorming, naming, campanhas criativas e soluções inovadoras. Qual desafio criativo você quer resolver?`,
	"taskmate":     `✅ Posso te ajudar com organização (GTD), priorização, gestão de tempo e produtividade. O que você quer otimizar?`,
	"coachmate":    `🎓 Posso te ajudar com desenvolvimento de carreira, aprendizado, motivação e crescimento profissional. Em que área você quer evoluir?`,
}

// defaultResponse answers for personas without a canned table.
const defaultResponse = `Entendi sua mensagem sobre "{{message}}".

Sou um agente especializado do WorkMate AI, pronto para ajudar! Para te dar a melhor resposta possível, me conte:

• **Contexto:** Qual a situação atual?
• **Objetivo:** O que você precisa alcançar?
• **Desafios:** Quais obstáculos você enfrenta?

Posso ajudar com análise de dados, redação, ideias criativas, organização de tarefas ou desenvolvimento profissional. 🚀`
