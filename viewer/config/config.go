package config

import (
	"log"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/joho/godotenv" // godotenv 라이브러리 사용
)

// 기본값 (환경변수가 없을 때)
const (
	defaultMessage   = "ictf{Teeheehee_you_found_me}"
	defaultPlacement = "offscreen"
	defaultTitle     = "Boundary Window"
)

// ✅ `init()`을 사용해 자동 실행
func init() {
	LoadEnv()
}

// ✅ Git 루트 디렉토리 찾기
func GetProjectRoot() string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		// 현재 작업 디렉토리를 대체로 사용
		currentDir, err := os.Getwd()
		if err != nil {
			log.Fatal("현재 디렉토리를 확인할 수 없습니다.")
		}
		return currentDir
	}
	return string(output[:len(output)-1]) // 개행 문자 제거
}

// ✅ 환경변수 로드 함수
// 우선순위: .env.local > .env > .env.example
// 아무것도 없으면 그냥 기본값으로 동작한다
func LoadEnv() {
	projectRoot := GetProjectRoot()
	candidates := []string{
		filepath.Join(projectRoot, ".env.local"),
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.example"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			log.Printf("⚠️ %s 파일 로드 오류: %v", filepath.Base(path), err)
			continue
		}
		return
	}
}

// Message: 표시할 메시지 (BOUNDARY_MESSAGE)
func Message() string {
	if msg := os.Getenv("BOUNDARY_MESSAGE"); msg != "" {
		return msg
	}
	return defaultMessage
}

// PlacementName: 메시지 배치 정책 이름 (BOUNDARY_PLACEMENT, offscreen/center)
func PlacementName() string {
	if name := os.Getenv("BOUNDARY_PLACEMENT"); name != "" {
		return name
	}
	return defaultPlacement
}

// WindowTitle: 윈도우 타이틀 (BOUNDARY_TITLE)
func WindowTitle() string {
	if title := os.Getenv("BOUNDARY_TITLE"); title != "" {
		return title
	}
	return defaultTitle
}
