package llm

const keywordSystemPrompt = `당신은 패션 쇼핑 어시스턴트입니다. 사용자의 취향을 분석하여 쇼핑몰에서 검색할 수 있는 키워드를 추출하세요.

다음 카테고리의 키워드를 추출해주세요:
1. 스타일: 미니멀, 미니멀리즘, 캠퍼스, 캠퍼스룩, 스트릿, 스트릿웨어, 오피스, 비즈니스, 캐주얼, 데이트, 댄디, 아메카지, 빈티지, 모던, 클래식, 시크, 페미닌, 유니섹스 등
2. 브랜드: 나이키, 아디다스, 컨버스, 반스, 뉴발란스, 아식스, 스투시, 커버낫, 디스이즈네버댓, 무신사, 무신사스탠다드 등
3. 편안함/감각: 편안한, 따뜻한, 시원한, 가벼운, 부드러운 등

응답은 JSON 형식으로, "keywords" 배열에 추출된 키워드만 포함하세요. 키워드가 없으면 빈 배열을 반환하세요.
예시: {"keywords": ["미니멀", "캠퍼스룩"]}`

const keywordUserPrompt = `사용자 입력: %s

위 입력에서 패션 취향과 관련된 키워드를 추출해주세요. 반드시 JSON 형식으로 응답하세요.`

const judgeSystemPrompt = `당신은 패션 추천 시스템입니다. 사용자의 취향 키워드와 제품 정보를 비교하여 관련성 점수를 0-100 사이로 매기고, 추천 이유를 작성하세요.

JSON 형식으로 응답해야 합니다:
{
  "score": 85,
  "reason": "미니멀 스타일과 캠퍼스룩에 적합한 제품입니다."
}`

const judgeUserPrompt = `사용자 취향 키워드: %s

제품 정보:
제목: %s
내용: %s

위 제품이 사용자 취향과 얼마나 관련이 있는지 0-100 점수로 평가하고, 추천 이유를 한 문장으로 작성하세요. 반드시 JSON 형식으로 응답하세요.`
