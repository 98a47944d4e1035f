package lesson

import (
	"html/template"
	"strings"

	"github.com/woophysics/lessons/internal/formative"
	"github.com/woophysics/lessons/internal/mathtag"
)

const Brand = "WooPhysics"

// Default returns the site catalog.
func Default() *Catalog {
	return &Catalog{
		Brand: Brand,
		Topics: []Topic{
			{Slug: "atom-spectrum", Title: "원자 스펙트럼", Subtitle: "빛의 문법 읽기"},
			{Slug: "energy-band", Title: "에너지띠", Subtitle: "고체의 전자 상태 (준비 중)"},
			{Slug: "em-wave", Title: "전자기파", Subtitle: "파동과 입자의 이중성 (준비 중)"},
		},
		Lessons: map[string]*Lesson{
			"atom-spectrum": atomSpectrum(),
			"energy-band":   energyBand(),
		},
	}
}

// html joins trusted markup fragments written in this package.
func html(parts ...string) template.HTML {
	return template.HTML(strings.Join(parts, "\n"))
}

func atomSpectrum() *Lesson {
	return &Lesson{
		Slug:  "atom-spectrum",
		Title: "원자 스펙트럼",
		Quiz:  formative.DefaultItems(),
		Sections: []Section{
			{
				ID: "intro", Label: "도입", Heading: "도입 — 빛의 문법 읽기",
				Body: html(
					`<p>네온사인과 수소 방전관의 빛을 분해하면 무지개 띠가 아니라 <strong>선</strong>으로 나타납니다. 왜 띄엄띄엄일까요?</p>`,
					`<ul><li>핵심 질문: 모든 빛은 연속적인가?</li><li>관찰 목표: 원소마다 선의 위치가 다름을 확인</li></ul>`,
					`<p><em>한 문장:</em> “빛의 간격은 원자의 <strong>에너지 준위</strong>라는 문법을 드러낸다.”</p>`,
				),
			},
			{
				ID: "observe", Label: "관찰", Heading: "관찰 — 스펙트럼 기록",
				Body: html(
					`<table><thead><tr><th>원소</th><th>선 색</th><th>파장 (nm)</th><th>강도</th></tr></thead><tbody>`,
					`<tr><td>H</td><td>적</td><td>656</td><td>★ ★ ☆</td></tr>`,
					`<tr><td>H</td><td>청록</td><td>486</td><td>★ ★</td></tr>`,
					`<tr><td>H</td><td>청자주</td><td>434</td><td>★</td></tr>`,
					`</tbody></table>`,
					`<p class="note">※ 실제 수치는 장비에 따라 다소 차이</p>`,
				),
			},
			{
				ID: "model", Label: "모델·식", Heading: "모델·식 — 전이와 파장",
				Body: html(
					`<p>보어 모형에서 에너지 준위는 `+string(mathtag.InlineHTML(`E_n = -13.6\,Z^2/n^2\ (\text{eV})`))+`.`,
					`전이 `+string(mathtag.InlineHTML(`n_2 \to n_1`))+`에 대한 방출 에너지는`,
					string(mathtag.BlockHTML(`\Delta E = 13.6\,Z^2\left(\frac{1}{n_1^2} - \frac{1}{n_2^2}\right),\qquad \lambda = \frac{hc}{\Delta E}`))+`</p>`,
					`<div class="example"><strong>예제</strong> (Balmer, H: `+string(mathtag.InlineHTML(`Z=1`))+`). `+string(mathtag.InlineHTML(`n_2=%d \to n_1=%d`, 3, 2))+`:`,
					`<ul><li>`+string(mathtag.InlineHTML(`\Delta E = 13.6\left(\frac{1}{2^2} - \frac{1}{3^2}\right) \approx 1.889\ \text{eV}`))+`</li>`,
					`<li>`+string(mathtag.InlineHTML(`\lambda = 1240 / 1.889 \approx 656.3\ \text{nm}`))+`</li></ul></div>`,
				),
			},
			{
				ID: "formative", Label: "형성체크", Heading: "형성체크 — 3문항",
				Formative: true,
			},
			{
				ID: "wrap", Label: "정리", Heading: "정리 — 한 문장",
				Body: html(
					`<p>“선의 간격은 원자의 에너지 준위 문법이다. 전이가 클수록 빛은 더 짧은 파장으로 나온다.”</p>`,
					`<p class="note">다음: `+string(mathtag.InlineHTML(`Z`))+`가 커지면(He⁺) 문법은 어떻게 달라질까?</p>`,
				),
			},
		},
	}
}

// energyBand is the authoring template lesson: each section shows the
// prompts a teacher replaces with real content.
func energyBand() *Lesson {
	return &Lesson{
		Slug:  "energy-band",
		Title: "에너지띠",
		Quiz:  formative.DefaultItems(),
		Sections: []Section{
			{
				ID: "intro", Label: "도입", Heading: "도입 — 여기 제목을 입력하세요",
				Body: html(
					`<p>[한 문장 요약] 이 레슨은 무엇을, 왜 배우는가? 학생의 경험/직관과 연결하여 2–3문장으로 서술하세요. 필요 시 인라인 수식 예: `+string(mathtag.InlineHTML(`E=mc^2`))+`.</p>`,
					`<ul><li>[핵심 질문] 수업이 답하려는 큰 질문 1</li><li>[학습 목표] 지식/기능/태도 관점의 목표 2</li><li>[선행 개념] 수업 전에 알고 오면 좋은 것 3</li></ul>`,
					`<blockquote>교사 멘트(선택): 학생에게 건네는 한 문장 메시지. 예) “이 레슨의 모든 길은 ‘에너지 차이’로 통합니다.”</blockquote>`,
				),
			},
			{
				ID: "observe", Label: "관찰", Heading: "관찰 — 활동 제목을 입력하세요",
				Body: html(
					`<p>[활동 지시] 무엇을 관찰/조작/기록하는지 구체적으로 씁니다. 필요 시 이미지 삽입 또는 링크를 제공합니다.</p>`,
					`<table><thead><tr><th>변수/대상</th><th>관찰 포인트</th><th>값/차이</th><th>비고</th></tr></thead><tbody>`,
					`<tr><td>[예: H]</td><td>[예: 선의 색]</td><td>[예: 656 nm]</td><td>—</td></tr>`,
					`<tr><td>[예: He]</td><td>[예: 선의 수]</td><td>[예: 3개]</td><td>—</td></tr>`,
					`</tbody></table>`,
					`<ul><li>[토의] 무엇이 같고, 무엇이 다른가?</li><li>[토의] 차이를 설명할 후보 개념은 무엇인가?</li></ul>`,
				),
			},
			{
				ID: "model", Label: "모델·식", Heading: "모델·식 — 핵심 개념/공식 제목",
				Body: html(
					`<h3>핵심 정의</h3><p>여기에 개념 정의를 씁니다. 인라인 수식 예: `+string(mathtag.InlineHTML(`n_2 \to n_1`))+`.</p>`,
					`<h3>기본 식</h3>`,
					string(mathtag.BlockHTML(`\boxed{\text{여기에 블록 수식 예: }\;\lambda = \tfrac{hc}{\Delta E}}`)),
					`<h3>예제</h3><ol><li>예제 1: 문제 서술 → 풀이의 핵심 단계(2–3줄) → 최종 답</li><li>예제 2: 변형 상황(매개변수 바꾸기, 단위 환산 등)</li></ol>`,
					`<h3>오개념 주의</h3><ul><li>오개념 A: [간단 진단 문장]</li><li>오개념 B: [간단 진단 문장]</li></ul>`,
				),
			},
			{
				ID: "formative", Label: "형성체크", Heading: "형성체크 — 안내 문구를 입력하세요",
				Body: html(
					`<p>[안내] 아래 문항에 응답해 보세요. 필요하면 문항/채점 기준을 편집하세요.</p>`,
				),
				Formative: true,
			},
			{
				ID: "wrap", Label: "정리", Heading: "정리 — 한 문장 요약",
				Body: html(
					`<p>[정리 문장] 오늘 배운 핵심 아이디어를 한 문장으로 수렴하세요.</p>`,
					`<ul><li>[오늘의 문법] 예: `+string(mathtag.InlineHTML(`\Delta E \uparrow \Rightarrow \lambda \downarrow`))+`</li>`,
					`<li>[다음 질문] 예: “핵전하가 커지면 이 문법은 어떻게 달라질까?”</li></ul>`,
				),
			},
		},
	}
}
